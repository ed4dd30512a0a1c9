package services

import (
	"context"
	"errors"
	"testing"

	"koreatrip/internal/repositories"
	"koreatrip/pkg/utils"
)

func newTestRegionService(t *testing.T) RegionServiceInterface {
	t.Helper()
	repo, err := repositories.NewRegionRepository()
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return NewRegionService(repo)
}

func TestResolveEveryCatalogCode(t *testing.T) {
	svc := newTestRegionService(t)
	repo, _ := repositories.NewRegionRepository()

	for _, r := range repo.All() {
		res := svc.Resolve(r.Code)
		if !res.IsSupported || !res.Exact || res.RegionCode != r.Code {
			t.Fatalf("resolve(%s) = %+v", r.Code, res)
		}
		if len(res.Suggestions) != 0 {
			t.Fatalf("exact match for %s should not carry suggestions", r.Code)
		}
	}
}

func TestResolveExactByNames(t *testing.T) {
	svc := newTestRegionService(t)

	cases := map[string]string{
		"제주":      "jeju",
		"제주특별자치도": "jeju",
		"서울 강남구":  "seoul_gangnam",
		"경주시":     "gyeongbuk_gyeongju",
	}
	for in, want := range cases {
		res := svc.Resolve(in)
		if !res.IsSupported || !res.Exact || res.RegionCode != want {
			t.Fatalf("resolve(%q) = %+v, want %s", in, res, want)
		}
	}

	if res := svc.Resolve("제주"); res.RegionName != "제주" {
		t.Fatalf("province should resolve to its short name, got %q", res.RegionName)
	}
}

func TestResolveFuzzy(t *testing.T) {
	svc := newTestRegionService(t)

	res := svc.Resolve("강남")
	if !res.IsSupported || res.Exact {
		t.Fatalf("expected fuzzy match, got %+v", res)
	}
	if res.RegionCode != "seoul_gangnam" || res.RegionName != "강남구" {
		t.Fatalf("unexpected first match %+v", res)
	}
	if len(res.Suggestions) == 0 || res.Suggestions[0].FullName != "서울 강남구" {
		t.Fatalf("expected suggestions starting with 서울 강남구, got %+v", res.Suggestions)
	}
}

func TestResolveFuzzyCapsSuggestions(t *testing.T) {
	svc := newTestRegionService(t)

	// "중구" exists in six metropolitan cities.
	res := svc.Resolve("중")
	if !res.IsSupported || res.Exact {
		t.Fatalf("expected fuzzy match, got %+v", res)
	}
	if len(res.Suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(res.Suggestions))
	}
	if res.RegionCode != res.Suggestions[0].Code {
		t.Fatalf("region code should be the first suggestion")
	}
}

func TestResolveUnknown(t *testing.T) {
	svc := newTestRegionService(t)

	for _, in := range []string{"존재하지않는지역", "", "   "} {
		res := svc.Resolve(in)
		if res.IsSupported {
			t.Fatalf("resolve(%q) should be unsupported", in)
		}
		if res.RegionCode != "" || res.RegionName != "" {
			t.Fatalf("unsupported result should not name a region: %+v", res)
		}
		if len(res.Suggestions) != 5 {
			t.Fatalf("expected 5 popular suggestions, got %d", len(res.Suggestions))
		}
		want := []string{"jeju", "busan", "seoul", "gyeongju", "jeonju"}
		for i, s := range res.Suggestions {
			if s.Code != want[i] {
				t.Fatalf("suggestion %d = %s, want %s", i, s.Code, want[i])
			}
		}
	}
}

func TestListRegionsValidation(t *testing.T) {
	svc := newTestRegionService(t)
	ctx := context.Background()

	if _, err := svc.ListRegions(ctx, 0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if _, err := svc.ListRegions(ctx, 1, 101); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}

	page, err := svc.ListRegions(ctx, 2, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 244 || len(page.Regions) != 10 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestGetRegion(t *testing.T) {
	svc := newTestRegionService(t)

	if _, err := svc.GetRegion("atlantis"); !errors.Is(err, utils.ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	r, err := svc.GetRegion("busan_haeundae")
	if err != nil || r.Name != "해운대구" {
		t.Fatalf("unexpected region %+v, %v", r, err)
	}
}

func TestNormalizeRegionName(t *testing.T) {
	cases := map[string]string{
		"서울특별시":     "서울",
		" 제주도 ":     "제주",
		"강원특별자치도":   "강원",
		"경주":        "경주",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeRegionName(in); got != want {
			t.Fatalf("NormalizeRegionName(%q) = %q, want %q", in, got, want)
		}
	}
}
