package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/dto"
	"github.com/kash-money/kash_backend/internal/middleware"
)

// reportHandler handles HTTP requests for the derived read models.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/spending-by-category", h.getSpendingByCategory)
		reports.GET("/income-vs-expense", h.getIncomeVsExpenseTrend)
		reports.GET("/budget-progress", h.getBudgetProgress)
	}
}

// getSummary godoc
// @Summary Financial summary
// @Description Returns total balance, income, expense, net income and savings rate for the range
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} map[string]string "Invalid date parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	rng, err := params.ToDateRange()
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), userID, rng)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getSpendingByCategory godoc
// @Summary Per-category breakdown
// @Description Returns per-category totals with each category's percentage of the grand total
// @Tags reports
// @Produce  json
// @Param   kind query string false "Category kind" Enums(income, expense) default(expense)
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} domain.CategoryTotal
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute category totals"
// @Security BearerAuth
// @Router /reports/spending-by-category [get]
func (h *reportHandler) getSpendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SpendingByCategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getSpendingByCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	rng, err := params.ToDateRange()
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	totals, err := h.reportingService.GetSpendingByCategory(c.Request.Context(), userID, domain.CategoryKind(params.Kind), rng)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// getIncomeVsExpenseTrend godoc
// @Summary Income vs expense trend
// @Description Returns income and expense sums per calendar bucket over the range
// @Tags reports
// @Produce  json
// @Param   bucket query string false "Bucket granularity" Enums(day, week, month, year) default(month)
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} domain.TrendPoint
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute trend"
// @Security BearerAuth
// @Router /reports/income-vs-expense [get]
func (h *reportHandler) getIncomeVsExpenseTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getIncomeVsExpenseTrend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	rng, err := params.ToDateRange()
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	points, err := h.reportingService.GetIncomeExpenseTrend(c.Request.Context(), userID, domain.TrendBucket(params.Bucket), rng)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// getBudgetProgress godoc
// @Summary Budget progress
// @Description Returns live spend status for every active budget
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.BudgetProgress
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute budget progress"
// @Security BearerAuth
// @Router /reports/budget-progress [get]
func (h *reportHandler) getBudgetProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	progress, err := h.reportingService.GetBudgetProgress(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
