package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/attribute"

	"koreatrip/internal/models/response_models"
	"koreatrip/pkg/geo"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

// TmapPOI is an around-search record that passed the tourist filter.
type TmapPOI struct {
	ID             string
	Name           string
	Category       string // bizCatTcode
	MiddleCategory string // middleBizCateNm
	Address        string
	Lat            float64
	Lng            float64
}

// CategoryLabel prefers the middle category name, as Tmap's top-level codes are terse.
func (p TmapPOI) CategoryLabel() string {
	if p.MiddleCategory != "" {
		return p.MiddleCategory
	}
	return p.Category
}

type TmapService interface {
	Enabled() bool
	Geocode(ctx context.Context, address string) (*response_models.Coordinates, error)
	SearchAround(ctx context.Context, lat, lng float64, radiusMeters int) ([]TmapPOI, error)
}

const (
	tmapAroundCount = 20
	// the around-search radius is given in km, 1..33
	tmapMaxRadiusKm = 33
)

type TmapClient struct {
	HTTP    *http.Client
	AppKey  string
	BaseURL string
	Count   int

	geocodes *cache.Cache
	metrics  *metrics.Collector
}

func NewTmapClient(appKey, baseURL string, timeout, geocodeTTL time.Duration, m *metrics.Collector) *TmapClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if geocodeTTL <= 0 {
		geocodeTTL = 24 * time.Hour
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &TmapClient{
		HTTP:     &http.Client{Timeout: timeout},
		AppKey:   appKey,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Count:    tmapAroundCount,
		geocodes: cache.New(geocodeTTL, time.Hour),
		metrics:  m,
	}
}

func (c *TmapClient) Enabled() bool {
	return c.AppKey != ""
}

func (c *TmapClient) Geocode(ctx context.Context, address string) (*response_models.Coordinates, error) {
	if !c.Enabled() {
		return nil, utils.ErrTmapUnavailable
	}
	if v, ok := c.geocodes.Get(address); ok {
		coords := v.(response_models.Coordinates)
		return &coords, nil
	}

	ctx, span := tracer.Start(ctx, "tmap.geocode")
	defer span.End()
	span.SetAttributes(attribute.String("tmap.addr", address))

	q := url.Values{}
	q.Set("version", "1")
	q.Set("format", "json")
	q.Set("addressFlag", "F00")
	q.Set("appKey", c.AppKey)
	q.Set("addr", address)

	var payload struct {
		CoordinateInfo struct {
			Coordinate []struct {
				Lat    string `json:"lat"`
				Lon    string `json:"lon"`
				NewLat string `json:"newLat"`
				NewLon string `json:"newLon"`
			} `json:"coordinate"`
		} `json:"coordinateInfo"`
	}

	start := time.Now()
	err := c.getJSON(ctx, "/geo/fullAddrGeo", q, &payload)
	c.metrics.RecordUpstream("tmap", "geocode", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("tmap geocode %q: %w", address, err)
	}

	if len(payload.CoordinateInfo.Coordinate) == 0 {
		return nil, fmt.Errorf("tmap geocode %q: %w", address, utils.ErrNoCoordinates)
	}
	first := payload.CoordinateInfo.Coordinate[0]
	lat, latOK := parseCoordinate(first.Lat, first.NewLat)
	lng, lngOK := parseCoordinate(first.Lon, first.NewLon)
	if !latOK || !lngOK || !geo.Valid(lat, lng) {
		return nil, fmt.Errorf("tmap geocode %q: %w", address, utils.ErrNoCoordinates)
	}

	coords := response_models.Coordinates{Lat: lat, Lng: lng}
	c.geocodes.Set(address, coords, cache.DefaultExpiration)
	return &coords, nil
}

// SearchAround returns tourist POIs within radiusMeters of the point, in API order.
func (c *TmapClient) SearchAround(ctx context.Context, lat, lng float64, radiusMeters int) ([]TmapPOI, error) {
	if !c.Enabled() {
		return nil, utils.ErrTmapUnavailable
	}

	ctx, span := tracer.Start(ctx, "tmap.search_around")
	defer span.End()

	radiusKm := int(math.Ceil(float64(radiusMeters) / 1000))
	if radiusKm < 1 {
		radiusKm = 1
	}
	if radiusKm > tmapMaxRadiusKm {
		radiusKm = tmapMaxRadiusKm
	}

	q := url.Values{}
	q.Set("version", "1")
	q.Set("format", "json")
	q.Set("appKey", c.AppKey)
	q.Set("centerLat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("centerLon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radiusKm))
	q.Set("searchtypCd", "A")
	q.Set("reqCoordType", "WGS84GEO")
	q.Set("resCoordType", "WGS84GEO")
	q.Set("count", strconv.Itoa(c.Count))

	var payload struct {
		SearchPoiInfo struct {
			Pois struct {
				Poi []struct {
					ID              string `json:"id"`
					Name            string `json:"name"`
					NoorLat         string `json:"noorLat"`
					NoorLon         string `json:"noorLon"`
					BizCatTcode     string `json:"bizCatTcode"`
					MiddleBizCateNm string `json:"middleBizCateNm"`
					UpperAddrName   string `json:"upperAddrName"`
					MiddleAddrName  string `json:"middleAddrName"`
					LowerAddrName   string `json:"lowerAddrName"`
					DetailAddrName  string `json:"detailAddrName"`
				} `json:"poi"`
			} `json:"pois"`
		} `json:"searchPoiInfo"`
	}

	start := time.Now()
	err := c.getJSON(ctx, "/pois/search/around", q, &payload)
	c.metrics.RecordUpstream("tmap", "search_around", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("tmap around search: %w", err)
	}

	raw := payload.SearchPoiInfo.Pois.Poi
	out := make([]TmapPOI, 0, len(raw))
	for _, p := range raw {
		if !isTouristPOI(p.Name, p.BizCatTcode) {
			continue
		}
		pLat, latOK := parseCoordinate(p.NoorLat)
		pLng, lngOK := parseCoordinate(p.NoorLon)
		if !latOK || !lngOK || !geo.Valid(pLat, pLng) {
			continue
		}
		if !geo.WithinRadius(lat, lng, pLat, pLng, float64(radiusMeters)) {
			continue
		}
		out = append(out, TmapPOI{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.BizCatTcode,
			MiddleCategory: p.MiddleBizCateNm,
			Address:        joinAddress(p.UpperAddrName, p.MiddleAddrName, p.LowerAddrName, p.DetailAddrName),
			Lat:            pLat,
			Lng:            pLng,
		})
	}

	span.SetAttributes(attribute.Int("tmap.raw", len(raw)), attribute.Int("tmap.kept", len(out)))
	return out, nil
}

func (c *TmapClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("tmap http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: tmap %s", utils.ErrUpstreamStatus, resp.Status)
	}
	// Tmap answers 204 when a search has no hits.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmap decode: %w", err)
	}
	return nil
}

func isTouristPOI(name, bizCat string) bool {
	if bizCat == "관광" || bizCat == "명소" {
		return true
	}
	return strings.Contains(name, "관광") || strings.Contains(name, "명소") || strings.Contains(name, "여행")
}

func parseCoordinate(candidates ...string) (float64, bool) {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
