package usecase

import (
	"context"
	"fmt"

	"FxRisk/internal/domain/models"
	domrepo "FxRisk/internal/domain/repository"
)

var pageOrder = []models.PageLink{
	{Page: models.PageHome, Title: "FX Risk Solution", Path: "/api/home"},
	{Page: models.PageAnalysis, Title: "FX Risk Analysis", Path: "/api/analyze"},
	{Page: models.PageNews, Title: "FX News", Path: "/api/news"},
}

const (
	homeWelcome    = "Welcome to the FX risk solution. Pick a feature below to get started."
	homeDisclaimer = "Disclaimer: these figures are probabilistic estimates based on historical data and " +
		"statistical models and may differ from actual market conditions. They are for reference only; " +
		"make investment decisions carefully. The bank accepts no liability for direct or indirect " +
		"losses arising from this information."
)

var homeFeatures = []string{
	"FX risk analysis: rate movement probabilities and a recommended strategy for your trade.",
	"FX news: key economic indicators and the latest currency news with a sentiment summary.",
}

// NavigationUseCase serves the landing screen and the page order.
type NavigationUseCase struct {
	rates domrepo.RateProvider
}

func NewNavigationUseCase(rates domrepo.RateProvider) *NavigationUseCase {
	return &NavigationUseCase{rates: rates}
}

// Page returns the navigation entry for page with its neighbours.
func (uc *NavigationUseCase) Page(page models.Page) (models.Navigation, error) {
	for i, p := range pageOrder {
		if p.Page != page {
			continue
		}
		nav := models.Navigation{Page: p.Page, Title: p.Title, Path: p.Path}
		if i > 0 {
			prev := pageOrder[i-1]
			nav.Prev = &prev
		}
		if i < len(pageOrder)-1 {
			next := pageOrder[i+1]
			nav.Next = &next
		}
		return nav, nil
	}
	return models.Navigation{}, models.NewInputError("page", "unknown page %q", page)
}

// Home returns the landing screen.
func (uc *NavigationUseCase) Home(ctx context.Context) (*models.HomeResult, error) {
	quote, err := uc.rates.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate quote: %w", err)
	}
	nav, _ := uc.Page(models.PageHome)

	pages := make([]models.PageLink, len(pageOrder))
	copy(pages, pageOrder)
	features := make([]string, len(homeFeatures))
	copy(features, homeFeatures)

	return &models.HomeResult{
		Title:      pageOrder[0].Title,
		Welcome:    homeWelcome,
		Features:   features,
		Disclaimer: homeDisclaimer,
		Pages:      pages,
		Navigation: nav,
		Quote:      quote,
	}, nil
}

// Quote returns the current rate.
func (uc *NavigationUseCase) Quote(ctx context.Context) (models.RateQuote, error) {
	return uc.rates.Quote(ctx)
}
