// Package geocode provides the forward-geocoding adapter for profile locations.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"roster/config"
	"roster/internal/domain/service"
)

// nominatimGeocoder resolves addresses against a Nominatim-compatible
// /search endpoint. The provider is consumed as a black box.
type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return &nominatimGeocoder{
		baseURL:   cfg.Geocoder.BaseURL,
		userAgent: cfg.Geocoder.UserAgent,
		client:    &http.Client{Timeout: cfg.Geocoder.Timeout},
		logger:    logger,
	}
}

// searchResult is the subset of the provider's response we care about.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve looks up the address and returns its coordinates.
// A timeout or an empty result set reports found=false without an error;
// only transport or decoding failures surface as errors.
func (g *nominatimGeocoder) Resolve(ctx context.Context, fullAddress string) (orb.Point, bool, error) {
	query := url.Values{}
	query.Set("q", fullAddress)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to build geocode request")
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		// A slow provider is treated as a miss, not a failure.
		if isTimeout(err) {
			g.logger.Warn("Geocode lookup timed out", "address", fullAddress)

			return orb.Point{}, false, nil
		}

		return orb.Point{}, false, errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, false, errors.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to decode geocode response")
	}

	if len(results) == 0 {
		return orb.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to parse geocode latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to parse geocode longitude")
	}

	// orb points are lon/lat ordered.
	return orb.Point{lon, lat}, true, nil
}

// isTimeout reports whether the transport error was a client timeout or a
// cancelled context.
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
