package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/dto"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"github.com/pawansinha0612/indian-stock-api/internal/service"
)

const htmlContentType = "text/html; charset=utf-8"

// Handler provides HTTP handlers for the dashboard pages.
//
// Responsibilities:
//   - Run one fetch-and-render cycle per page request via the service layer
//   - Serve the resulting HTML document
//   - Translate infrastructure failures into structured JSON errors
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.DashboardService): Service dependency that produces rendered pages.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// NiftyPage handles GET / requests.
//
// NiftyPage godoc
// @Summary      NIFTY50 dashboard
// @Description  Renders the NIFTY50 constituents as stock cards with near-low highlighting
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string             "HTML page"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       / [get]
func (h *Handler) NiftyPage(c *gin.Context) {
	h.renderPage(c, models.Nifty50)
}

// SensexPage handles GET /sensex requests.
//
// SensexPage godoc
// @Summary      SENSEX dashboard
// @Description  Renders the SENSEX constituents as stock cards with near-low highlighting
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string             "HTML page"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /sensex [get]
func (h *Handler) SensexPage(c *gin.Context) {
	h.renderPage(c, models.Sensex)
}

// renderPage runs the page cycle for one index. Upstream trouble is already
// absorbed by the service (it renders the error variant), so an error here
// means the renderer itself failed.
func (h *Handler) renderPage(c *gin.Context, index models.Index) {
	page, err := h.svc.IndexPage(c.Request.Context(), index)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to render dashboard", err))
		return
	}

	c.Data(http.StatusOK, htmlContentType, page)
}
