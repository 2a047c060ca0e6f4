package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// activityHandler serves the audit trail, notifications and the dashboard.
type activityHandler struct {
	auditService        portssvc.AuditSvc
	notificationService portssvc.NotificationSvc
	dashboardService    portssvc.DashboardSvc
}

func registerActivityRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &activityHandler{
		auditService:        services.Audit,
		notificationService: services.Notification,
		dashboardService:    services.Dashboard,
	}

	rg.GET("/audit", h.listAudit)
	rg.GET("/notifications", h.listNotifications)
	rg.POST("/notifications/:id/read", h.markNotificationRead)
	rg.GET("/dashboard", h.getDashboard)
}

// listAudit godoc
// @Summary Audit trail
// @Tags activity
// @Produce json
// @Param entityType query string false "Entity type filter"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAuditResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit [get]
func (h *activityHandler) listAudit(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	entries, err := h.auditService.ListAuditEntries(c.Request.Context(), userID, params.EntityType, params.Limit, params.Offset)
	if err != nil {
		writeError(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditResponse{Entries: entries})
}

// listNotifications godoc
// @Summary The caller's notifications
// @Tags activity
// @Produce json
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *activityHandler) listNotifications(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Notifications: notifications})
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags activity
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *activityHandler) markNotificationRead(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err, "Failed to update notification")
		return
	}
	c.Status(http.StatusNoContent)
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Open work items per status, stale ON_HOLD items and pending proposals.
// @Tags activity
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *activityHandler) getDashboard(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
