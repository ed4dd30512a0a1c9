package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"koreatrip/pkg/metrics"
)

const (
	imageTierStatic  = "static"
	imageTierTmap    = "tmap"
	imageTierPixabay = "pixabay"
	imageTierStock   = "stock"
)

const (
	jejuImage      = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
	seoulImage     = "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
	busanImage     = "https://images.unsplash.com/photo-1536431311719-398b6704d4cc?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
	gyeongjuImage  = "https://images.unsplash.com/photo-1509909756405-be0199881695?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
	gangneungImage = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
	yeosuImage     = "https://images.unsplash.com/photo-1551918120-9739cb430c6d?w=800&h=600&fit=crop&auto=format&q=80&ixlib=rb-4.0.3"
)

// Curated images keyed by every common spelling of the region.
var curatedRegionImages = map[string]string{
	"제주": jejuImage, "제주도": jejuImage, "제주특별자치도": jejuImage, "jeju": jejuImage,
	"서울": seoulImage, "서울특별시": seoulImage, "seoul": seoulImage,
	"부산": busanImage, "부산광역시": busanImage, "busan": busanImage,
	"경주": gyeongjuImage, "경주시": gyeongjuImage, "gyeongbuk_gyeongju": gyeongjuImage,
	"강릉": gangneungImage, "강릉시": gangneungImage, "gangwon_gangneung": gangneungImage,
	"여수": yeosuImage, "여수시": yeosuImage, "jeonnam_yeosu": yeosuImage,
}

var stockImages = []string{
	"https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1558618047-b14fb846c877?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1544550581-5f7ceaf7f992?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1578470506794-5b6e90e8d3bc?w=400&h=300&fit=crop",
}

type ImageServiceInterface interface {
	ResolveImages(ctx context.Context, names []string) map[string]string
	ResolveImage(ctx context.Context, name string) string
}

type ImageService struct {
	tmap        TmapService
	pixabay     ImageSearcher
	log         *zap.Logger
	metrics     *metrics.Collector
	concurrency int
}

func NewImageService(tmap TmapService, pixabay ImageSearcher, log *zap.Logger, m *metrics.Collector, concurrency int) ImageServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &ImageService{tmap: tmap, pixabay: pixabay, log: log, metrics: m, concurrency: concurrency}
}

func (s *ImageService) ResolveImage(ctx context.Context, name string) string {
	return s.ResolveImages(ctx, []string{name})[name]
}

// ResolveImages returns a non-empty URL for every distinct name.
// Curated images are served without network; the rest are looked up in
// parallel and fall back to a stock rotation.
func (s *ImageService) ResolveImages(ctx context.Context, names []string) map[string]string {
	ctx, span := tracer.Start(ctx, "images.resolve")
	defer span.End()
	span.SetAttributes(attribute.Int("images.requested", len(names)))

	images := make(map[string]string, len(names))
	pending := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if u, ok := curatedImage(name); ok {
			images[name] = u
			s.metrics.ImageResolutionsTotal.WithLabelValues(imageTierStatic).Inc()
			continue
		}
		pending = append(pending, name)
	}

	if len(pending) > 0 && s.tmap != nil && s.tmap.Enabled() {
		var (
			mu sync.Mutex
			g  errgroup.Group
		)
		g.SetLimit(s.concurrency)
		for _, name := range pending {
			name := name
			g.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error("Recovered from panic resolving image",
							zap.String("region", name), zap.Any("panic", r))
					}
				}()
				u, tier, err := s.resolveDynamic(ctx, name)
				if err != nil {
					s.log.Warn("Dynamic image lookup failed", zap.String("region", name), zap.Error(err))
					return nil
				}
				mu.Lock()
				images[name] = u
				mu.Unlock()
				s.metrics.ImageResolutionsTotal.WithLabelValues(tier).Inc()
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, name := range pending {
		if images[name] != "" {
			continue
		}
		images[name] = stockImage(name)
		s.metrics.ImageResolutionsTotal.WithLabelValues(imageTierStock).Inc()
	}
	return images
}

// resolveDynamic looks up the region's first tourist attraction and searches
// an image for it, or for the region itself when there is none.
func (s *ImageService) resolveDynamic(ctx context.Context, name string) (string, string, error) {
	coords, err := s.tmap.Geocode(ctx, name)
	if err != nil {
		return "", "", err
	}
	attractions, err := s.tmap.SearchAround(ctx, coords.Lat, coords.Lng, poiSearchRadiusMeters)
	if err != nil {
		return "", "", err
	}

	keyword := name
	if len(attractions) > 0 {
		keyword = attractions[0].Name
	}

	if s.pixabay != nil && s.pixabay.Enabled() {
		u, err := s.pixabay.SearchImage(ctx, keyword)
		if err == nil {
			return u, imageTierPixabay, nil
		}
		s.log.Debug("Pixabay lookup failed, using search url",
			zap.String("keyword", keyword), zap.Error(err))
	}
	return searchImageURL(keyword), imageTierTmap, nil
}

func curatedImage(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if u, ok := curatedRegionImages[trimmed]; ok {
		return u, true
	}
	u, ok := curatedRegionImages[NormalizeRegionName(trimmed)]
	return u, ok
}

func searchImageURL(keyword string) string {
	return fmt.Sprintf("https://source.unsplash.com/800x600/?%s,korea,travel", url.PathEscape(keyword))
}

func stockImage(name string) string {
	return stockImages[utf8.RuneCountInString(name)%len(stockImages)]
}
