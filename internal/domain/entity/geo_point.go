// Package entity contains the core business objects of the project.
package entity

// GeoPoint is a coordinate with optional resolved address fields.
// Address fields stay empty until reverse geocoding succeeds.
type GeoPoint struct {
	Latitude   float64 // Degrees, -90..90.
	Longitude  float64 // Degrees, -180..180.
	Address    string  // Street address.
	City       string  // City or locality.
	State      string  // State or region.
	PostalCode string  // Postal code.
}

// Placemark holds the address fields produced by reverse geocoding.
type Placemark struct {
	Address    string
	City       string
	State      string
	PostalCode string
}

// WithPlacemark returns a copy of the point carrying the placemark's address fields.
func (p GeoPoint) WithPlacemark(pm *Placemark) GeoPoint {
	if pm == nil {
		return p
	}

	p.Address = pm.Address
	p.City = pm.City
	p.State = pm.State
	p.PostalCode = pm.PostalCode

	return p
}
