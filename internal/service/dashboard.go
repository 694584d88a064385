package service

import (
	"context"

	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"github.com/pawansinha0612/indian-stock-api/internal/logger"
	"github.com/pawansinha0612/indian-stock-api/internal/marketdata"
	"github.com/pawansinha0612/indian-stock-api/internal/render"
)

// DashboardService defines business logic for producing dashboard pages.
type DashboardService interface {
	// IndexPage runs one fetch-and-render cycle for the given index and
	// returns the complete HTML document.
	IndexPage(ctx context.Context, index models.Index) ([]byte, error)
}

type dashboardService struct {
	client   marketdata.Client
	renderer *render.Renderer
}

func NewDashboardService(client marketdata.Client, renderer *render.Renderer) DashboardService {
	return &dashboardService{client: client, renderer: renderer}
}

// IndexPage is the single failure boundary of the render cycle. Fetch and
// decode problems of any kind degrade to the page's error variant, so the
// dashboard stays up while the upstream misbehaves; only template
// execution failures propagate as errors.
func (s *dashboardService) IndexPage(ctx context.Context, index models.Index) ([]byte, error) {
	env, err := s.client.IndexSnapshot(ctx, index)
	if err != nil {
		logger.L().Error().
			Err(err).
			Str("index", index.ID).
			Msg("Index snapshot fetch failed")
		return s.renderer.Render(render.BuildErrorPage(index, err))
	}

	logger.L().Debug().
		Str("index", index.ID).
		Int("records", len(env.Data)).
		Msg("Index snapshot fetched")

	return s.renderer.Render(render.BuildPage(index, env))
}
