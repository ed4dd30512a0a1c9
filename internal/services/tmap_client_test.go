package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

const geocodeBody = `{"coordinateInfo":{"coordinate":[{"lat":"33.4996213","lon":"126.5311884"}]}}`

const aroundBody = `{"searchPoiInfo":{"pois":{"poi":[
 {"id":"101","name":"제주 관광 안내소","noorLat":"33.5000","noorLon":"126.5300","bizCatTcode":"편의","middleBizCateNm":"안내소","upperAddrName":"제주","middleAddrName":"제주시","lowerAddrName":"이도동"},
 {"id":"102","name":"용두암","noorLat":"33.5160","noorLon":"126.5120","bizCatTcode":"명소","middleBizCateNm":"자연명소"},
 {"id":"103","name":"편의점","noorLat":"33.5010","noorLon":"126.5320","bizCatTcode":"편의","middleBizCateNm":"편의점"},
 {"id":"104","name":"서귀포 여행자센터","noorLat":"33.2500","noorLon":"126.5600","bizCatTcode":"관광","middleBizCateNm":"안내"},
 {"id":"105","name":"명소 좌표없음","noorLat":"","noorLon":"","bizCatTcode":"명소"}
]}}}`

func newTmapTestServer(t *testing.T, geocodeCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/fullAddrGeo", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(geocodeCalls, 1)
		if r.URL.Query().Get("appKey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("addr") == "없는곳" {
			_, _ = w.Write([]byte(`{"coordinateInfo":{"coordinate":[]}}`))
			return
		}
		_, _ = w.Write([]byte(geocodeBody))
	})
	mux.HandleFunc("/pois/search/around", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("radius") != "15" || r.URL.Query().Get("count") != "20" {
			t.Errorf("unexpected around query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(aroundBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTmapGeocodeDecodesAndMemoizes(t *testing.T) {
	var calls int32
	srv := newTmapTestServer(t, &calls)
	m := metrics.NewNop()
	client := NewTmapClient("test-key", srv.URL, time.Second, time.Hour, m)

	coords, err := client.Geocode(context.Background(), "제주")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if coords.Lat < 33.49 || coords.Lat > 33.51 || coords.Lng < 126.53 || coords.Lng > 126.54 {
		t.Fatalf("unexpected coordinates %+v", coords)
	}

	if _, err := client.Geocode(context.Background(), "제주"); err != nil {
		t.Fatalf("second geocode: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected memoized second lookup, got %d calls", calls)
	}
	if got := testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("tmap", "geocode", "success")); got != 1 {
		t.Fatalf("expected one recorded geocode, got %v", got)
	}
}

func TestTmapGeocodeEmptyResult(t *testing.T) {
	var calls int32
	srv := newTmapTestServer(t, &calls)
	client := NewTmapClient("test-key", srv.URL, time.Second, time.Hour, nil)

	_, err := client.Geocode(context.Background(), "없는곳")
	if !errors.Is(err, utils.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates, got %v", err)
	}
}

func TestTmapReportsNon2xx(t *testing.T) {
	var calls int32
	srv := newTmapTestServer(t, &calls)
	client := NewTmapClient("wrong-key", srv.URL, time.Second, time.Hour, nil)

	_, err := client.Geocode(context.Background(), "제주")
	if !errors.Is(err, utils.ErrUpstreamStatus) {
		t.Fatalf("expected ErrUpstreamStatus, got %v", err)
	}
}

func TestTmapWithoutKey(t *testing.T) {
	client := NewTmapClient("", "http://127.0.0.1:1", time.Second, time.Hour, nil)
	if client.Enabled() {
		t.Fatalf("client without key should be disabled")
	}
	if _, err := client.Geocode(context.Background(), "제주"); !errors.Is(err, utils.ErrTmapUnavailable) {
		t.Fatalf("expected ErrTmapUnavailable, got %v", err)
	}
	if _, err := client.SearchAround(context.Background(), 33.5, 126.5, 15000); !errors.Is(err, utils.ErrTmapUnavailable) {
		t.Fatalf("expected ErrTmapUnavailable, got %v", err)
	}
}

func TestTmapSearchAroundFilters(t *testing.T) {
	var calls int32
	srv := newTmapTestServer(t, &calls)
	client := NewTmapClient("test-key", srv.URL, time.Second, time.Hour, nil)

	pois, err := client.SearchAround(context.Background(), 33.4996, 126.5312, 15000)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// 103 is not a tourist POI, 104 is ~28 km away, 105 has no coordinates.
	if len(pois) != 2 {
		t.Fatalf("expected 2 POIs, got %d: %+v", len(pois), pois)
	}
	if pois[0].ID != "101" || pois[1].ID != "102" {
		t.Fatalf("expected API order preserved, got %s, %s", pois[0].ID, pois[1].ID)
	}
	if pois[0].Address != "제주 제주시 이도동" {
		t.Fatalf("unexpected address %q", pois[0].Address)
	}
	if pois[1].CategoryLabel() != "자연명소" {
		t.Fatalf("unexpected category label %q", pois[1].CategoryLabel())
	}
}

func TestTmapSearchAroundNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	client := NewTmapClient("test-key", srv.URL, time.Second, time.Hour, nil)

	pois, err := client.SearchAround(context.Background(), 37.5, 127.0, 15000)
	if err != nil {
		t.Fatalf("204 should not be an error: %v", err)
	}
	if len(pois) != 0 {
		t.Fatalf("expected no POIs")
	}
}
