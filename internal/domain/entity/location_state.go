// Package entity contains the core business objects of the project.
package entity

// LocationStatus is the phase of the location state machine.
type LocationStatus string

const (
	LocationUnknown   LocationStatus = "unknown"
	LocationResolving LocationStatus = "resolving"
	LocationKnown     LocationStatus = "known"
	LocationDenied    LocationStatus = "denied"
	LocationFailed    LocationStatus = "failed"
)

// LocationState is a snapshot of the device location session.
type LocationState struct {
	Status      LocationStatus
	Point       *GeoPoint // Set only when Status is LocationKnown.
	Message     string    // User-facing reason for Denied and Failed.
	CanAskAgain bool      // For Denied, whether the OS will prompt again.
}

// IsKnown reports whether a position is available.
func (s LocationState) IsKnown() bool {
	return s.Status == LocationKnown && s.Point != nil
}

// Accuracy is the precision hint passed to the device.
type Accuracy string

const (
	AccuracyLow      Accuracy = "low"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyHigh     Accuracy = "high"
)

// ParseAccuracy parses a configured accuracy, defaulting to balanced.
func ParseAccuracy(s string) Accuracy {
	switch Accuracy(s) {
	case AccuracyLow, AccuracyHigh:
		return Accuracy(s)
	default:
		return AccuracyBalanced
	}
}

// Permission describes the OS location permission.
type Permission struct {
	Granted     bool
	CanAskAgain bool
}
