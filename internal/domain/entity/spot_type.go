// Package entity contains the core business objects of the project.
package entity

// SpotType classifies the physical kind of a parking spot.
type SpotType string

const (
	SpotTypeDriveway SpotType = "driveway"
	SpotTypeGarage   SpotType = "garage"
	SpotTypeCarport  SpotType = "carport"
	SpotTypeStreet   SpotType = "street"
	SpotTypeLot      SpotType = "lot"
	SpotTypeOther    SpotType = "other"

	// SpotTypeAll is the search sentinel that disables spot type filtering.
	SpotTypeAll SpotType = "all"
)

// SpotTypes lists every concrete spot type in display order.
var SpotTypes = []SpotType{
	SpotTypeDriveway,
	SpotTypeGarage,
	SpotTypeCarport,
	SpotTypeStreet,
	SpotTypeLot,
	SpotTypeOther,
}

// String returns the string representation of the SpotType.
func (t SpotType) String() string {
	return string(t)
}

// IsValid checks if the SpotType is a concrete spot type.
func (t SpotType) IsValid() bool {
	switch t {
	case SpotTypeDriveway, SpotTypeGarage, SpotTypeCarport, SpotTypeStreet, SpotTypeLot, SpotTypeOther:
		return true
	default:
		return false
	}
}
