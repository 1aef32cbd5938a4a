package models

// ReportFilter represents filter parameters for querying reports
type ReportFilter struct {
	UserID    string `form:"-"`         // Set from the auth context, not the query string
	LakeID    string `form:"lakeId"`
	Category  string `form:"category"`  // algae, trash, oil_spill, ...
	Severity  string `form:"severity"`  // low, moderate, high, severe, critical
	Status    string `form:"status"`    // submitted, verified, resolved, rejected
	StartTime int64  `form:"startTime"` // Unix timestamp
	EndTime   int64  `form:"endTime"`   // Unix timestamp
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// NearbyLakesQuery represents query parameters for the nearby-lakes
// endpoint. The coordinates are pointers so that a present-but-zero
// value still satisfies the required binding.
type NearbyLakesQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
	RadiusKm  float64  `form:"radiusKm"`
}
