package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	now func() time.Time
}

func registerPeriodRoutes(rg *gin.RouterGroup, now func() time.Time) {
	h := &periodHandler{now: now}
	rg.GET("/period", h.resolvePeriod)
}

// resolvePeriod godoc
// @Summary Resolve a reporting period
// @Description Returns the inclusive date range and label of the period containing the anchor, plus the anchors of the previous and next periods.
// @Tags periods
// @Produce json
// @Param anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param granularity query string false "WEEK, MONTH, SEMESTER, YEAR or ALL (default MONTH)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid anchor or granularity"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /period [get]
func (h *periodHandler) resolvePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	cursor, err := q.Cursor(h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := dto.ToPeriodResponse(cursor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
