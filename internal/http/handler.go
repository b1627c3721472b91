package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mining-reports-service/internal/http/middleware"
	"mining-reports-service/internal/model"
	"mining-reports-service/internal/service"
)

type Handler struct {
	reports *service.ReportService
	log     zerolog.Logger
}

func NewHandler(reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{reports: reports, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/reports")
	protected.Use(authMiddleware)

	protected.GET("/trucks", h.getTrucks)
	protected.GET("/movement", h.getMovement)
	protected.GET("/billing", h.getBilling)
	protected.GET("/daily", h.getDaily)
	protected.GET("/timeline", h.getTimeline)
	protected.GET("/fleet", h.getFleet)
	protected.GET("/projects/:code/movement", h.getProjectMovement)
}

func (h *Handler) getTrucks(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	operation := strings.TrimSpace(c.Query("operation"))

	data, err := h.reports.GetTruckReport(c.Request.Context(), principal, operation)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getMovement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := h.parseReportFilter(c)

	data, err := h.reports.GetMovementReport(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getBilling(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := h.parseReportFilter(c)

	data, err := h.reports.GetBillingReport(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getDaily(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	day := strings.ToLower(strings.TrimSpace(c.Query("day")))
	if day != "" && day != "today" && day != "yesterday" {
		c.JSON(http.StatusBadRequest, errorResponse("day must be today or yesterday"))
		return
	}

	data, err := h.reports.GetDailyReport(c.Request.Context(), principal, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getTimeline(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	day := strings.ToLower(strings.TrimSpace(c.Query("day")))
	if day != "" && day != "today" && day != "yesterday" {
		c.JSON(http.StatusBadRequest, errorResponse("day must be today or yesterday"))
		return
	}
	equipment := strings.TrimSpace(c.Query("equipment"))

	data, err := h.reports.GetTimelineReport(c.Request.Context(), principal, day, equipment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getFleet(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	data, err := h.reports.GetFleetReport(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) getProjectMovement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, errorResponse("missing project code"))
		return
	}

	filter := h.parseReportFilter(c)

	data, err := h.reports.GetProjectMovementReport(c.Request.Context(), principal, code, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) parseReportFilter(c *gin.Context) model.ReportFilter {
	filter := model.ReportFilter{}

	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filter.Range.From = parsed
		} else if parsed, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.Range.From = parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			filter.Range.To = parsed
		} else if parsed, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.Range.To = parsed
		}
	}

	filter.Operation = strings.TrimSpace(c.Query("operation"))
	filter.Equipment = strings.TrimSpace(c.Query("equipment"))

	return filter
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
