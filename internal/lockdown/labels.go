package lockdown

import (
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/shenikar/lockdown_map/internal/models"
)

// Labels строит точки подписей в центроидах стран.
// Используется, когда отдельный набор центроидов не сконфигурирован.
func Labels(countries *geojson.FeatureCollection) *geojson.FeatureCollection {
	labels := geojson.NewFeatureCollection()
	if countries == nil {
		return labels
	}

	for _, feature := range countries.Features {
		if feature.Geometry == nil {
			continue
		}
		props := models.PropertiesOf(feature)
		if props.Name == "" {
			continue
		}

		centroid, area := planar.CentroidArea(feature.Geometry)
		if area == 0 {
			// у точек и линий площади нет
			centroid = feature.Geometry.Bound().Center()
		}

		label := geojson.NewFeature(centroid)
		label.Properties[models.PropName] = props.Name
		if props.ISO2 != "" {
			label.Properties[models.PropISO2] = props.ISO2
		}
		labels.Append(label)
	}
	return labels
}
