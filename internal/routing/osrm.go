package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tripapi/internal/config"
	"tripapi/internal/model"
)

// OSRMClient implements Router against an OSRM-compatible HTTP API.
// It is safe for concurrent use.
type OSRMClient struct {
	session     *http.Client
	baseURL     string
	profile     string
	maxAttempts int
	backoff     time.Duration
	duration    *prometheus.HistogramVec
}

var _ Router = (*OSRMClient)(nil)

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry model.LineString `json:"geometry"`
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
	} `json:"routes"`
}

// NewOSRMClient builds a client from cfg. When reg is non-nil, request latency is
// exported as routing_request_duration_seconds.
func NewOSRMClient(cfg config.RoutingConfig, reg prometheus.Registerer) (*OSRMClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("routing base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse routing base url: %w", err)
	}

	profile := cfg.Profile
	if profile == "" {
		profile = "driving"
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	c := &OSRMClient{
		session: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:     base,
		profile:     profile,
		maxAttempts: attempts,
		backoff:     200 * time.Millisecond,
	}

	if reg != nil {
		c.duration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routing_request_duration_seconds",
				Help:    "Latency of route lookups against the routing service.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		)
		if err := reg.Register(c.duration); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Route requests a full-overview GeoJSON route through waypoints.
func (o *OSRMClient) Route(ctx context.Context, waypoints []model.Coordinates) (_ *Route, err error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	start := time.Now()
	defer func() {
		if o.duration == nil {
			return
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		o.duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	endpoint := o.routeURL(waypoints)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		if decoded.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoRoute, decoded.Message)
		}
		return nil, ErrNoRoute
	}

	best := decoded.Routes[0]
	geometry := best.Geometry
	if geometry.Type == "" {
		geometry.Type = "LineString"
	}

	return &Route{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        geometry,
	}, nil
}

// routeURL encodes waypoints in lon,lat order as the OSRM path expects.
func (o *OSRMClient) routeURL(waypoints []model.Coordinates) string {
	parts := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		parts = append(parts,
			strconv.FormatFloat(w.Lon, 'f', -1, 64)+","+strconv.FormatFloat(w.Lat, 'f', -1, 64))
	}

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")

	return fmt.Sprintf("%s/route/v1/%s/%s?%s", o.baseURL, o.profile, strings.Join(parts, ";"), q.Encode())
}
