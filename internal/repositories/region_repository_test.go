package repositories

import (
	"context"
	"testing"
)

func newTestRepo(t *testing.T) RegionRepository {
	t.Helper()
	repo, err := NewRegionRepository()
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return repo
}

func TestCatalogCounts(t *testing.T) {
	repo := newTestRepo(t)

	provinces, districts := 0, 0
	for _, r := range repo.All() {
		switch r.Level {
		case LevelProvince:
			provinces++
		case LevelDistrict:
			districts++
		default:
			t.Fatalf("region %s has level %d", r.Code, r.Level)
		}
	}
	if provinces != 17 || districts != 227 {
		t.Fatalf("expected 17 provinces and 227 districts, got %d and %d", provinces, districts)
	}
	if repo.Count() != 244 {
		t.Fatalf("expected 244 regions, got %d", repo.Count())
	}
}

func TestCatalogProvinceReferences(t *testing.T) {
	repo := newTestRepo(t)

	for _, r := range repo.All() {
		if r.Level != LevelDistrict {
			continue
		}
		p, ok := repo.GetByCode(r.ProvinceCode)
		if !ok || p.Level != LevelProvince {
			t.Fatalf("district %s references missing province %q", r.Code, r.ProvinceCode)
		}
		if r.ShortName != "" {
			t.Fatalf("district %s should not carry a short name", r.Code)
		}
		if want := p.ShortName + " " + r.Name; r.FullName != want {
			t.Fatalf("district %s full name = %q, want %q", r.Code, r.FullName, want)
		}
	}
}

func TestGetByCode(t *testing.T) {
	repo := newTestRepo(t)

	r, ok := repo.GetByCode("seoul_gangnam")
	if !ok {
		t.Fatalf("expected seoul_gangnam")
	}
	if r.FullName != "서울 강남구" {
		t.Fatalf("unexpected full name %q", r.FullName)
	}
	if _, ok := repo.GetByCode("jeju_jeju"); ok {
		t.Fatalf("administrative cities are not part of the catalog")
	}
}

func TestGetListOfRegionsPaging(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.GetListOfRegions(ctx, 1, 17)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 17 || first[0].Code != "seoul" || first[16].Code != "jeju" {
		t.Fatalf("first page should be the provinces, got %d items", len(first))
	}

	last, err := repo.GetListOfRegions(ctx, 25, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(last) != 4 {
		t.Fatalf("expected 4 regions on the last page, got %d", len(last))
	}

	empty, _ := repo.GetListOfRegions(ctx, 100, 10)
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end")
	}
}

func TestTourismInfoUsesThemeCodes(t *testing.T) {
	repo := newTestRepo(t)
	valid := map[string]bool{ThemeNature: true, ThemeCulture: true, ThemeHistory: true, ThemeFood: true, ThemeActivity: true}

	for code, info := range regionTourismInfo {
		if _, ok := repo.GetByCode(code); !ok {
			t.Fatalf("tourism info for unknown region %s", code)
		}
		for _, th := range info.Themes {
			if !valid[th] {
				t.Fatalf("region %s has unknown theme %q", code, th)
			}
		}
	}

	info, ok := repo.TourismInfo("jeju")
	if !ok || info.Themes[0] != ThemeNature {
		t.Fatalf("expected jeju to lead with nature")
	}
}
