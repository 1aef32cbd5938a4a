package models

// Coordinate represents a WGS84 point produced by a device location provider
type Coordinate struct {
	Latitude  float64 `json:"latitude" form:"latitude"`
	Longitude float64 `json:"longitude" form:"longitude"`

	// Optional device-provided fields
	Accuracy float64 `json:"accuracy,omitempty" form:"accuracy"` // Meters
	Altitude float64 `json:"altitude,omitempty" form:"altitude"` // Meters
	Heading  float64 `json:"heading,omitempty" form:"heading"`   // Degrees
	Speed    float64 `json:"speed,omitempty" form:"speed"`       // m/s
}
