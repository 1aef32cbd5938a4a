package lakes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ecolake/ecolake-backend-go/internal/geo"
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

// Resolver finds named water bodies near a coordinate by querying an
// Overpass-style geodata service, with a TTL cache in front. One
// instance owns the cache for the process lifetime.
type Resolver struct {
	endpoint   string
	httpClient *http.Client
	cache      *Cache
}

// NewResolver creates a resolver against the given Overpass endpoint
func NewResolver(endpoint string, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: NewCache(cacheTTL),
	}
}

// ResolveNearbyLakes returns water bodies within radiusKm of coord,
// deduplicated by name and sorted by distance ascending. Service and
// transport failures are logged and yield an empty list; only invalid
// input returns an error.
func (r *Resolver) ResolveNearbyLakes(ctx context.Context, coord models.Coordinate, radiusKm float64) ([]models.NearbyWaterBody, error) {
	if err := geo.ValidateCoordinate(coord.Latitude, coord.Longitude); err != nil {
		return nil, err
	}
	if err := geo.ValidateRadiusKm(radiusKm); err != nil {
		return nil, err
	}

	key := CacheKey(coord.Latitude, coord.Longitude, radiusKm)
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	log := logger.GetLogger("lakes")

	elements, err := r.queryOverpass(ctx, coord, radiusKm)
	if err != nil {
		// Fails soft: the caller proceeds with zero lakes found
		log.Warnf("Overpass query failed for %s: %v", key, err)
		return []models.NearbyWaterBody{}, nil
	}

	lakes := r.rankElements(coord, elements)
	r.cache.Put(key, lakes)

	return lakes, nil
}

// queryOverpass issues a single POST with the union query as a form body
func (r *Resolver) queryOverpass(ctx context.Context, coord models.Coordinate, radiusKm float64) ([]overpassElement, error) {
	query := buildOverpassQuery(coord.Latitude, coord.Longitude, int(radiusKm*1000))
	body := url.Values{"data": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var result overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	return result.Elements, nil
}

// rankElements converts raw elements into deduplicated, distance-sorted
// water bodies
func (r *Resolver) rankElements(coord models.Coordinate, elements []overpassElement) []models.NearbyWaterBody {
	seen := make(map[string]bool)
	lakes := make([]models.NearbyWaterBody, 0, len(elements))

	for _, el := range elements {
		lat, lon, ok := el.point()
		if !ok {
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = models.UnnamedWaterBody
		}

		// Named duplicates collapse to the first occurrence; unnamed
		// bodies cannot be matched against each other and stay distinct
		if name != models.UnnamedWaterBody {
			lower := strings.ToLower(name)
			if seen[lower] {
				continue
			}
			seen[lower] = true
		}

		lakes = append(lakes, models.NearbyWaterBody{
			ID:         fmt.Sprintf("osm-%s-%d", el.Type, el.ID),
			Name:       name,
			Latitude:   lat,
			Longitude:  lon,
			DistanceKm: geo.DistanceKm(coord.Latitude, coord.Longitude, lat, lon),
			Category:   elementCategory(el.Tags),
		})
	}

	sort.Slice(lakes, func(i, j int) bool {
		return lakes[i].DistanceKm < lakes[j].DistanceKm
	})

	return lakes
}

// elementCategory derives the loose category tag for a water body
func elementCategory(tags map[string]string) string {
	if water := tags["water"]; water != "" {
		return water
	}
	if tags["landuse"] == "reservoir" {
		return "reservoir"
	}
	return "lake"
}
