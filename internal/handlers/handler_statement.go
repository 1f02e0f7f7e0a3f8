package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type statementHandler struct {
	statementService portssvc.StatementSvcFacade
	now              func() time.Time
}

func registerStatementRoutes(rg *gin.RouterGroup, statementSvc portssvc.StatementSvcFacade, now func() time.Time) {
	h := &statementHandler{statementService: statementSvc, now: now}

	stmts := rg.Group("/statements")
	{
		stmts.GET("", h.listTemplates)
		stmts.GET("/:template_id", h.generateStatement)
	}
}

// listTemplates godoc
// @Summary List statement templates
// @Tags statements
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} dto.TemplateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list statement templates"
// @Security BearerAuth
// @Router /companies/{company_id}/statements [get]
func (h *statementHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	templates, err := h.statementService.ListTemplates(c.Request.Context(), companyID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list statement templates")
		return
	}
	c.JSON(http.StatusOK, dto.ToTemplateResponses(templates))
}

// generateStatement godoc
// @Summary Generate a statement for a period
// @Description Evaluates a statement template over the transactions of the selected period. Every line carries its value and its percentage of the base line.
// @Tags statements
// @Produce json
// @Param company_id path string true "Company ID"
// @Param template_id path string true "Template ID"
// @Param anchor query string false "Anchor date (YYYY-MM-DD)"
// @Param granularity query string false "WEEK, MONTH, SEMESTER, YEAR or ALL"
// @Param percentBase query string false "Line used as 100%, defaults to the first REVENUE line"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 422 {object} map[string]string "Template is misconfigured"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Security BearerAuth
// @Router /companies/{company_id}/statements/{template_id} [get]
func (h *statementHandler) generateStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	templateID := c.Param("template_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var q dto.StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	cursor, err := q.Cursor(h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("template_id", templateID), slog.String("period", cursor.Label()))
	report, err := h.statementService.GenerateStatement(c.Request.Context(), companyID, templateID, cursor, q.PercentBase, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(report))
}
