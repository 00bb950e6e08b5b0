package models

// Location is a geocoded place. Every field except ID is optional.
type Location struct {
	ID          string   `json:"id" db:"id"`
	Country     *string  `json:"country,omitempty" db:"country"`
	CountryCode *string  `json:"countryCode,omitempty" db:"country_code"`
	City        *string  `json:"city,omitempty" db:"city"`
	Latitude    *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64 `json:"longitude,omitempty" db:"longitude"`
}

// CountryCodeValue returns the country code or "" when unknown
func (l *Location) CountryCodeValue() string {
	if l == nil || l.CountryCode == nil {
		return ""
	}
	return *l.CountryCode
}

// CityValue returns the city name or "" when unknown
func (l *Location) CityValue() string {
	if l == nil || l.City == nil {
		return ""
	}
	return *l.City
}

// CountryValue returns the country name or "" when unknown
func (l *Location) CountryValue() string {
	if l == nil || l.Country == nil {
		return ""
	}
	return *l.Country
}

// Coordinates returns latitude and longitude, and whether both are set
func (l *Location) Coordinates() (float64, float64, bool) {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}
