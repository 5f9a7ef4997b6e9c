package handlers

import (
	"net/http"

	"bookit/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler renders the search/catalog view.
type CatalogHandler struct {
	Svc    *catalog.Service
	Logger *zap.Logger
}

func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// Home handles GET /. Filters come from the URL query and are forwarded to
// the API untouched; the handler never filters the result itself.
func (h *CatalogHandler) Home(c *gin.Context) {
	filters := catalog.ParseFilters(c.Request.URL.Query())

	experiences, err := h.Svc.List(c.Request.Context(), filters)
	if err != nil {
		h.Logger.Error("failed to load experiences", zap.Error(err))
		c.HTML(http.StatusBadGateway, "home.html", gin.H{
			"Error":    "Failed to load experiences. Please try again.",
			"RetryURL": c.Request.URL.RequestURI(),
			"Search":   filters.Search,
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Experiences": experiences,
		"Count":       len(experiences),
		"Search":      filters.Search,
	})
}
