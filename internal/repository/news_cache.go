package repository

import (
	"context"
	"errors"
	"time"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/domain/repository"
	"FxRisk/pkg/cache"
	applogger "FxRisk/pkg/logger"
	xutil "FxRisk/pkg/util"
)

// CachedNewsSource memoizes another NewsSource by date. Cache failures fall
// back to the underlying source.
type CachedNewsSource struct {
	next    repository.NewsSource
	cache   cache.Service
	ttl     time.Duration
	metrics repository.Metrics
	logger  *applogger.Logger
}

// NewCachedNewsSource wraps next with cache.
func NewCachedNewsSource(next repository.NewsSource, c cache.Service, ttl time.Duration, m repository.Metrics, l *applogger.Logger) *CachedNewsSource {
	return &CachedNewsSource{next: next, cache: c, ttl: ttl, metrics: m, logger: l}
}

var _ repository.NewsSource = (*CachedNewsSource)(nil)

func (s *CachedNewsSource) LookupNews(ctx context.Context, date time.Time) ([]models.NewsItem, error) {
	key := cache.GenerateKey("news", xutil.FormatDate(date))

	var items []models.NewsItem
	err := s.cache.Get(ctx, key, &items)
	switch {
	case err == nil:
		s.metrics.RecordNewsLookup("hit")
		if items == nil {
			items = []models.NewsItem{}
		}
		return items, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Warn("news cache get failed", applogger.String("key", key), applogger.Error(err))
	}

	items, err = s.next.LookupNews(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.metrics.RecordNewsLookup("empty")
	} else {
		s.metrics.RecordNewsLookup("miss")
	}

	if err := s.cache.Set(ctx, key, items, s.ttl); err != nil {
		s.logger.Warn("news cache set failed", applogger.String("key", key), applogger.Error(err))
	}
	return items, nil
}
