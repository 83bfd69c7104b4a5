package routing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tripapi/internal/logging"
	"tripapi/internal/model"
)

// RouteCache stores routes by key. Get reports a miss with ok == false and a nil error.
type RouteCache interface {
	Get(ctx context.Context, key string) (route *Route, ok bool, err error)
	Set(ctx context.Context, key string, route *Route) error
}

// CachedRouter serves routes from a cache and falls back to the wrapped Router on a miss.
// Cache failures are logged and never fail a lookup.
type CachedRouter struct {
	next    Router
	cache   RouteCache
	profile string
	loc     *time.Location
}

var _ Router = (*CachedRouter)(nil)

// NewCachedRouter wraps next with cache. profile namespaces the keys.
func NewCachedRouter(next Router, cache RouteCache, profile string, loc *time.Location) *CachedRouter {
	return &CachedRouter{next: next, cache: cache, profile: profile, loc: loc}
}

func (c *CachedRouter) Route(ctx context.Context, waypoints []model.Coordinates) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}
	key := CacheKey(c.profile, waypoints)

	route, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logFailure("route_cache_get_failed", key, err)
	} else if ok {
		return route, nil
	}

	route, err = c.next.Route(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, route); err != nil {
		c.logFailure("route_cache_set_failed", key, err)
	}
	return route, nil
}

func (c *CachedRouter) logFailure(event, key string, err error) {
	logging.Event(c.loc, map[string]any{
		"component":     "routing",
		"event":         event,
		"status":        "error",
		"cache_key":     key,
		"error_message": err.Error(),
	})
}

// CacheKey identifies a route request. Coordinates are rounded to 6 decimals (about 0.1 m).
func CacheKey(profile string, waypoints []model.Coordinates) string {
	var b strings.Builder
	b.WriteString("route:")
	b.WriteString(profile)
	b.WriteByte(':')
	for i, w := range waypoints {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(w.Lon, 'f', 6, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(w.Lat, 'f', 6, 64))
	}
	return b.String()
}
