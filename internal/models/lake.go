package models

// UnnamedWaterBody is the display name used when the geodata source
// carries no name tag. Unnamed bodies are never deduplicated against
// each other.
const UnnamedWaterBody = "Unnamed Water Body"

// NearbyWaterBody represents a water body returned by the lake resolver.
// Instances are created fresh on every query and never persisted.
type NearbyWaterBody struct {
	ID         string  `json:"id"`   // "<type>-<id>", e.g. "osm-way-12345"
	Name       string  `json:"name"` // UnnamedWaterBody when the source has no name
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Category   string  `json:"category,omitempty"` // lake, reservoir, pond, basin
}
