package lockdown

import (
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/lockdown_map/internal/models"
)

// Join дописывает в свойства каждого объекта найденную запись (data), статус и цвет.
// Коллекция изменяется на месте и возвращается та же самая.
func Join(fc *geojson.FeatureCollection, lookup models.LockdownLookup, now time.Time) *geojson.FeatureCollection {
	if fc == nil {
		return nil
	}

	for _, feature := range fc.Features {
		if feature.Properties == nil {
			feature.Properties = geojson.Properties{}
		}

		name := feature.Properties.MustString(models.PropName, "")
		rec := lookup[name]
		if rec != nil {
			feature.Properties[models.PropData] = rec
		} else {
			delete(feature.Properties, models.PropData)
		}

		status := ClassifyRecord(rec, now)
		feature.Properties[models.PropStatus] = string(status)
		feature.Properties[models.PropColor] = StatusColor(status)
	}
	return fc
}

// Summary считает количество объектов по статусам
func Summary(fc *geojson.FeatureCollection) map[models.Status]int {
	summary := make(map[models.Status]int)
	if fc == nil {
		return summary
	}
	for _, feature := range fc.Features {
		summary[models.PropertiesOf(feature).Status]++
	}
	return summary
}
