package models

import "github.com/paulmach/orb/geojson"

// Ключи свойств географического объекта
const (
	PropName   = "NAME"
	PropISO2   = "iso2"
	PropData   = "data"
	PropColor  = "color"
	PropStatus = "status"
)

// RegionProperties - типизированное представление свойств объекта карты
type RegionProperties struct {
	Name   string
	ISO2   string
	Data   *RegionLockdownRecord
	Color  string
	Status Status
}

// PropertiesOf читает свойства объекта; отсутствующие поля остаются пустыми
func PropertiesOf(f *geojson.Feature) RegionProperties {
	if f == nil {
		return RegionProperties{}
	}
	props := RegionProperties{
		Name:   f.Properties.MustString(PropName, ""),
		ISO2:   f.Properties.MustString(PropISO2, ""),
		Color:  f.Properties.MustString(PropColor, ""),
		Status: Status(f.Properties.MustString(PropStatus, "")),
	}
	if rec, ok := f.Properties[PropData].(*RegionLockdownRecord); ok {
		props.Data = rec
	}
	return props
}
