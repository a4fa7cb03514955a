package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// countryQualifier pins every geocoding query to the country of operation.
const countryQualifier = "Brazil"

// minAddressLen filters out address fragments too short to help the geocoder.
const minAddressLen = 3

type counter interface {
	Inc()
}

// Resolver resolves free-text place descriptions to coordinates through a
// Nominatim-compatible geocoding service. It performs no caching and no
// rate limiting: every call is an independent network round trip.
type Resolver struct {
	baseURL  string
	client   *http.Client
	logger   logx.Logger
	failures counter
}

// NewResolver creates a Resolver against the given search endpoint.
func NewResolver(baseURL string, timeout time.Duration, logger logx.Logger, failures counter) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		failures: failures,
	}
}

// geocodeResult is one candidate from the provider. Latitude and longitude
// arrive as strings.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve turns a place description into coordinates.
//
// The query concatenates the most specific available fields with the country
// qualifier. Outcomes are encoded as coordinate sentinels rather than errors:
// an empty result set yields the zero sentinel (after one retry without the
// detailed address, when one was supplied), while a transport or parse
// failure yields the country-center fallback. Callers can therefore
// distinguish "no match" from "service unreachable".
func (r *Resolver) Resolve(ctx context.Context, place, state, detailedAddress string) domain.Coordinates {
	place = strings.TrimSpace(place)
	state = strings.TrimSpace(state)
	detailedAddress = strings.TrimSpace(detailedAddress)
	if len(detailedAddress) <= minAddressLen {
		detailedAddress = ""
	}

	coords, found, err := r.search(ctx, buildQuery(place, state, detailedAddress))
	if err != nil {
		if r.failures != nil {
			r.failures.Inc()
		}
		r.logger.Warn("geocoding unavailable, using country-center fallback",
			logx.String("place", place),
			logx.Any("err", err),
		)
		return domain.CountryCenter
	}
	if found {
		return coords
	}

	// broader query: drop the address detail and try once more
	if detailedAddress != "" {
		coords, found, err = r.search(ctx, buildQuery(place, state, ""))
		if err != nil {
			if r.failures != nil {
				r.failures.Inc()
			}
			r.logger.Warn("geocoding unavailable on retry, using country-center fallback",
				logx.String("place", place),
				logx.Any("err", err),
			)
			return domain.CountryCenter
		}
		if found {
			return coords
		}
	}

	r.logger.Debug("geocoding found no match",
		logx.String("place", place),
		logx.String("state", state),
	)
	return domain.ZeroCoordinates
}

// search performs one provider round trip. found is false on an empty
// result set; err is non-nil only for transport or parse failures.
func (r *Resolver) search(ctx context.Context, query string) (domain.Coordinates, bool, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, false, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.Coordinates{}, false, err
	}
	defer resp.Body.Close()

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, false, err
	}
	if len(results) == 0 {
		return domain.Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, false, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, false, err
	}
	return domain.Coordinates{Lat: lat, Lng: lng}, true, nil
}

func buildQuery(place, state, detailedAddress string) string {
	parts := make([]string, 0, 4)
	if detailedAddress != "" {
		parts = append(parts, detailedAddress)
	}
	if place != "" {
		parts = append(parts, place)
	}
	if state != "" {
		parts = append(parts, state)
	}
	parts = append(parts, countryQualifier)
	return strings.Join(parts, ", ")
}
