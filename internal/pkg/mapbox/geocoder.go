package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/troski/troski/internal/pkg/models"
)

// ErrNoMatch is returned when the query resolves to no place
var ErrNoMatch = errors.New("no matching place")

// ErrDisabled is returned when no access token is configured
var ErrDisabled = errors.New("geocoding disabled")

const defaultCountry = "gh"

// Geocoder resolves addresses through the Mapbox forward geocoding API
type Geocoder struct {
	baseURL     string
	accessToken string
	country     string
	httpClient  *http.Client
}

// NewGeocoder creates a geocoder. It is disabled when the token is empty.
func NewGeocoder(cfg models.MapboxConfig) *Geocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mapbox.com"
	}
	return &Geocoder{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: cfg.AccessToken,
		country:     defaultCountry,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a token is configured
func (g *Geocoder) Enabled() bool {
	return g != nil && g.accessToken != ""
}

type geocodingResponse struct {
	Features []struct {
		ID        string    `json:"id"`
		Text      string    `json:"text"`
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [longitude, latitude]
	} `json:"features"`
}

// Geocode returns the best match for the query
func (g *Geocoder) Geocode(ctx context.Context, query string) (models.Location, error) {
	if !g.Enabled() {
		return models.Location{}, ErrDisabled
	}

	params := url.Values{}
	params.Set("access_token", g.accessToken)
	params.Set("limit", "1")
	params.Set("country", g.country)
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s", g.baseURL, url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var body geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Location{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(body.Features) == 0 || len(body.Features[0].Center) < 2 {
		return models.Location{}, ErrNoMatch
	}

	f := body.Features[0]
	loc := models.NewLocation(f.Text, f.PlaceName, f.Center[1], f.Center[0])
	loc.ID = f.ID
	return loc, nil
}
