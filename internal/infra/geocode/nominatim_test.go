package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roster/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(baseURL string, timeout time.Duration) *nominatimGeocoder {
	cfg := &config.Config{
		Geocoder: &config.GeocoderConfig{
			BaseURL:   baseURL,
			UserAgent: "roster-test/1.0",
			Timeout:   timeout,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNominatimGeocoder(cfg, logger).(*nominatimGeocoder)
}

func TestNominatimGeocoder_Resolve_Hit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1 Main St, Springfield, IL, USA", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "roster-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"lat":"39.78","lon":"-89.65"}]`)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL, time.Second)

	point, found, err := geocoder.Resolve(context.Background(), "1 Main St, Springfield, IL, USA")

	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 39.78, point.Lat(), 1e-9)
	assert.InDelta(t, -89.65, point.Lon(), 1e-9)
}

func TestNominatimGeocoder_Resolve_Miss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL, time.Second)

	_, found, err := geocoder.Resolve(context.Background(), "nowhere")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestNominatimGeocoder_Resolve_TimeoutIsAMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL, 20*time.Millisecond)

	_, found, err := geocoder.Resolve(context.Background(), "slow place")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestNominatimGeocoder_Resolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL, time.Second)

	_, found, err := geocoder.Resolve(context.Background(), "anywhere")

	assert.Error(t, err)
	assert.False(t, found)
}

func TestNominatimGeocoder_Resolve_BadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"an array"}`)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL, time.Second)

	_, found, err := geocoder.Resolve(context.Background(), "anywhere")

	assert.Error(t, err)
	assert.False(t, found)
}
