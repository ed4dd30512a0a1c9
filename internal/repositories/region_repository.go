package repositories

import (
	"context"

	"koreatrip/internal/models/response_models"
)

type RegionRepository interface {
	All() []response_models.Region
	Count() int
	GetByCode(code string) (response_models.Region, bool)
	GetListOfRegions(ctx context.Context, page int, pageSize int) ([]response_models.Region, error)
	TourismInfo(code string) (response_models.TourismInfo, bool)
}

type regionRepository struct {
	regions []response_models.Region
	byCode  map[string]int
}

// NewRegionRepository builds the immutable catalog. It only fails if the
// static tables are inconsistent.
func NewRegionRepository() (RegionRepository, error) {
	regions, err := buildCatalog()
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]int, len(regions))
	for i, r := range regions {
		byCode[r.Code] = i
	}
	return &regionRepository{regions: regions, byCode: byCode}, nil
}

// All returns a copy so callers can't mutate the catalog.
func (r *regionRepository) All() []response_models.Region {
	out := make([]response_models.Region, len(r.regions))
	copy(out, r.regions)
	return out
}

func (r *regionRepository) Count() int {
	return len(r.regions)
}

func (r *regionRepository) GetByCode(code string) (response_models.Region, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return response_models.Region{}, false
	}
	return r.regions[i], true
}

func (r *regionRepository) GetListOfRegions(ctx context.Context, page int, pageSize int) ([]response_models.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if offset >= len(r.regions) {
		return []response_models.Region{}, nil
	}
	end := offset + pageSize
	if end > len(r.regions) {
		end = len(r.regions)
	}

	out := make([]response_models.Region, end-offset)
	copy(out, r.regions[offset:end])
	return out, nil
}

func (r *regionRepository) TourismInfo(code string) (response_models.TourismInfo, bool) {
	info, ok := regionTourismInfo[code]
	return info, ok
}
