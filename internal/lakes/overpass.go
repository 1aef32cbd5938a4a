package lakes

import "fmt"

// overpassResponse is the JSON envelope returned by an Overpass endpoint
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassElement is a single node/way/relation result. Lat/Lon are only
// present on nodes; ways and relations carry a computed Center instead.
type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// point resolves the representative coordinate for an element, preferring
// the computed centroid over a native node position
func (e *overpassElement) point() (lat, lon float64, ok bool) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	return 0, 0, false
}

// buildOverpassQuery constructs the union query for water bodies within
// radiusMeters of a point. The four patterns overlap on purpose: OSM
// tagging of lakes is inconsistent, and a union is the only way to catch
// explicitly typed water, named water, reservoir land-use, and bare
// water-type tags in one round trip.
func buildOverpassQuery(lat, lon float64, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, lat, lon)
	return fmt.Sprintf(`[out:json][timeout:30];
(
  way["natural"="water"]["water"~"^(lake|reservoir|pond)$"]%[1]s;
  relation["natural"="water"]["water"~"^(lake|reservoir|pond)$"]%[1]s;
  way["natural"="water"]["name"]%[1]s;
  relation["natural"="water"]["name"]%[1]s;
  way["landuse"="reservoir"]%[1]s;
  relation["landuse"="reservoir"]%[1]s;
  nwr["water"~"^(lake|reservoir|pond|basin)$"]%[1]s;
);
out center;`, around)
}
