package db_models

type Destination struct {
	BaseModel
	City    string `gorm:"uniqueIndex:idx_destinations_city_country"`
	Country string `gorm:"uniqueIndex:idx_destinations_city_country"`
}

// Label renders the human-readable "city, country" form used by
// selection controls.
func (d Destination) Label() string {
	return d.City + ", " + d.Country
}
