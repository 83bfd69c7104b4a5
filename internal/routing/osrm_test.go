package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripapi/internal/config"
	"tripapi/internal/model"
)

const okBody = `{
  "code": "Ok",
  "routes": [{
    "geometry": {"type": "LineString", "coordinates": [[-87.6298, 41.8781], [-90.199, 38.627], [-118.2437, 34.0522]]},
    "distance": 3240000.5,
    "duration": 108000
  }]
}`

var waypoints = []model.Coordinates{
	{Lat: 41.8781, Lon: -87.6298},
	{Lat: 38.627, Lon: -90.199},
	{Lat: 34.0522, Lon: -118.2437},
}

func newTestClient(t *testing.T, srv *httptest.Server, attempts int, reg prometheus.Registerer) *OSRMClient {
	t.Helper()
	c, err := NewOSRMClient(config.RoutingConfig{
		BaseURL:     srv.URL + "/",
		Profile:     "driving",
		TimeoutSec:  2,
		MaxAttempts: attempts,
	}, reg)
	require.NoError(t, err)
	c.backoff = time.Millisecond
	return c
}

func TestOSRMClient_Route(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotOverview, gotGeometries string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotOverview = r.URL.Query().Get("overview")
			gotGeometries = r.URL.Query().Get("geometries")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(okBody))
		}))
		defer srv.Close()

		reg := prometheus.NewRegistry()
		c := newTestClient(t, srv, 1, reg)

		route, err := c.Route(context.Background(), waypoints)
		require.NoError(t, err)

		assert.Equal(t, "/route/v1/driving/-87.6298,41.8781;-90.199,38.627;-118.2437,34.0522", gotPath)
		assert.Equal(t, "full", gotOverview)
		assert.Equal(t, "geojson", gotGeometries)
		assert.Equal(t, 3240000.5, route.DistanceMeters)
		assert.Equal(t, 108000.0, route.DurationSeconds)
		assert.Equal(t, "LineString", route.Geometry.Type)
		require.Len(t, route.Geometry.Coordinates, 3)
		assert.Equal(t, [2]float64{-90.199, 38.627}, route.Geometry.Coordinates[1])
		assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(okBody))
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 4, nil)
		route, err := c.Route(context.Background(), waypoints)
		require.NoError(t, err)
		assert.NotNil(t, route)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 2, nil)
		_, err := c.Route(context.Background(), waypoints)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Code 502")
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"InvalidQuery","message":"Query string malformed"}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 4, nil)
		_, err := c.Route(context.Background(), waypoints)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "InvalidQuery")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("no routes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"NoRoute","message":"Impossible route between points","routes":[]}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 1, nil)
		_, err := c.Route(context.Background(), waypoints)
		assert.ErrorIs(t, err, ErrNoRoute)
		assert.Contains(t, err.Error(), "Impossible route")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 1, nil)
		_, err := c.Route(context.Background(), waypoints)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode route response")
	})

	t.Run("too few waypoints", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}))
		defer srv.Close()

		c := newTestClient(t, srv, 1, nil)
		_, err := c.Route(context.Background(), waypoints[:1])
		assert.ErrorIs(t, err, ErrTooFewWaypoints)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(okBody))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newTestClient(t, srv, 3, nil)
		_, err := c.Route(ctx, waypoints)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewOSRMClient(t *testing.T) {
	_, err := NewOSRMClient(config.RoutingConfig{BaseURL: "  "}, nil)
	assert.Error(t, err)

	c, err := NewOSRMClient(config.RoutingConfig{BaseURL: "http://osrm.local"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "driving", c.profile)
	assert.Equal(t, 1, c.maxAttempts)
	assert.Equal(t, 10*time.Second, c.session.Timeout)
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&httpStatusError{Code: http.StatusTooManyRequests}))
	assert.True(t, retryable(&httpStatusError{Code: http.StatusGatewayTimeout}))
	assert.False(t, retryable(&httpStatusError{Code: http.StatusNotFound}))
	assert.False(t, retryable(context.Canceled))
}
