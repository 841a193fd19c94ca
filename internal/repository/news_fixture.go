package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/domain/repository"
	xutil "FxRisk/pkg/util"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/news.yaml
var newsFixture []byte

// FixtureNewsSource serves news from a static date-keyed table.
type FixtureNewsSource struct {
	byDate map[string][]models.NewsItem
}

// NewFixtureNewsSource loads the embedded fixture.
func NewFixtureNewsSource() (*FixtureNewsSource, error) {
	return ParseNewsFixture(newsFixture)
}

// ParseNewsFixture decodes a YAML document mapping YYYY-MM-DD to news items.
func ParseNewsFixture(b []byte) (*FixtureNewsSource, error) {
	raw := map[string][]models.NewsItem{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse news fixture: %w", err)
	}
	for date, items := range raw {
		if _, ok := xutil.ParseDate(date); !ok {
			return nil, fmt.Errorf("news fixture: bad date key %q", date)
		}
		for i, it := range items {
			if it.Sentiment < -1 || it.Sentiment > 1 || it.Confidence < 0 || it.Confidence > 1 {
				return nil, fmt.Errorf("news fixture: %s[%d] out of range", date, i)
			}
		}
	}
	return &FixtureNewsSource{byDate: raw}, nil
}

var _ repository.NewsSource = (*FixtureNewsSource)(nil)

// LookupNews returns a copy of the items for date, or an empty slice.
func (s *FixtureNewsSource) LookupNews(_ context.Context, date time.Time) ([]models.NewsItem, error) {
	items := s.byDate[xutil.FormatDate(date)]
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out, nil
}

// Dates returns the fixture dates.
func (s *FixtureNewsSource) Dates() []string {
	out := make([]string, 0, len(s.byDate))
	for d := range s.byDate {
		out = append(out, d)
	}
	return out
}
