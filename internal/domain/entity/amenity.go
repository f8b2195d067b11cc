// Package entity contains the core business objects of the project.
package entity

// Amenity is a feature offered by a parking spot.
type Amenity string

const (
	AmenityCovered      Amenity = "covered"
	AmenitySecurity     Amenity = "security"
	AmenityLighting     Amenity = "lighting"
	AmenityEVCharging   Amenity = "ev_charging"
	AmenityCCTV         Amenity = "cctv"
	AmenityGated        Amenity = "gated"
	AmenityAccessible   Amenity = "accessible"
	AmenityAlwaysAccess Amenity = "24_7_access"
)

// IsValid checks if the Amenity belongs to the closed amenity set.
func (a Amenity) IsValid() bool {
	switch a {
	case AmenityCovered, AmenitySecurity, AmenityLighting, AmenityEVCharging,
		AmenityCCTV, AmenityGated, AmenityAccessible, AmenityAlwaysAccess:
		return true
	default:
		return false
	}
}

// NormalizeAmenities drops duplicates while keeping first-seen order.
func NormalizeAmenities(in []Amenity) []Amenity {
	if in == nil {
		return nil
	}

	seen := make(map[Amenity]struct{}, len(in))
	out := make([]Amenity, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	return out
}
