package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"triage-assistant/internal/domain"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/service"
)

const maxFAQLimit = 50

type faqSearcher interface {
	Search(ctx context.Context, query string, loc domain.Locale, limit int) ([]domain.FAQItem, error)
}

type FAQHandler struct {
	logger        *zap.Logger
	faq           faqSearcher
	catalog       *i18n.Catalog
	defaultLocale domain.Locale
}

func NewFAQHandler(logger *zap.Logger, faq faqSearcher, catalog *i18n.Catalog, defaultLocale domain.Locale) *FAQHandler {
	return &FAQHandler{
		logger:        logger,
		faq:           faq,
		catalog:       catalog,
		defaultLocale: domain.ParseLocale(string(defaultLocale), domain.LocaleEN),
	}
}

// Search maneja GET /faq?q=&lang=&limit=.
func (h *FAQHandler) Search(c *gin.Context) {
	limit := service.DefaultFAQLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxFAQLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		limit = n
	}

	loc := domain.ParseLocale(c.Query("lang"), h.defaultLocale)
	items, err := h.faq.Search(c.Request.Context(), c.Query("q"), loc, limit)
	if err != nil {
		h.logger.Error("faq search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search faq"})
		return
	}
	if items == nil {
		items = []domain.FAQItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Suggestions maneja GET /symptoms/suggestions?lang=.
func (h *FAQHandler) Suggestions(c *gin.Context) {
	loc := domain.ParseLocale(c.Query("lang"), h.defaultLocale)
	c.JSON(http.StatusOK, gin.H{"suggestions": h.catalog.Suggestions(loc)})
}
