package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workItemHandler handles work item, lifecycle and proposal requests.
type workItemHandler struct {
	workItemService portssvc.WorkItemSvcFacade
	approvalService portssvc.ApprovalSvcFacade
}

func newWorkItemHandler(ws portssvc.WorkItemSvcFacade, as portssvc.ApprovalSvcFacade) *workItemHandler {
	return &workItemHandler{workItemService: ws, approvalService: as}
}

// registerWorkItemRoutes registers routes related to work items and their proposals.
func registerWorkItemRoutes(rg *gin.RouterGroup, ws portssvc.WorkItemSvcFacade, as portssvc.ApprovalSvcFacade) {
	h := newWorkItemHandler(ws, as)

	workItems := rg.Group("/work-items")
	{
		workItems.GET("", h.listWorkItems)
		workItems.POST("", h.createWorkItem)
		workItems.GET("/archive", h.listArchive)
		workItems.GET("/:id", h.getWorkItem)
		workItems.POST("/:id/transitions", h.applyTransition)
		workItems.GET("/:id/history", h.listHistory)
		workItems.GET("/:id/updates", h.listUpdates)
	}

	rg.POST("/work-item-updates/:updateID/resolve", h.resolveUpdate)
}

// createWorkItem godoc
// @Summary Create a work item
// @Description Creates a work item in state NEW with progress 0, optionally with ordered process steps
// @Tags work-items
// @Accept json
// @Produce json
// @Param workItem body dto.CreateWorkItemRequest true "Work item details"
// @Success 201 {object} domain.WorkItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items [post]
func (h *workItemHandler) createWorkItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.workItemService.CreateWorkItem(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err, "Failed to create work item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// listWorkItems godoc
// @Summary List work items
// @Description Lists work items, newest first. Archived items are excluded unless includeArchived is set.
// @Tags work-items
// @Produce json
// @Param status query string false "Status filter"
// @Param workshopID query string false "Workshop filter"
// @Param orderID query string false "Order filter"
// @Param includeArchived query bool false "Include archived items"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListWorkItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items [get]
func (h *workItemHandler) listWorkItems(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListWorkItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	items, err := h.workItemService.ListWorkItems(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		writeError(c, err, "Failed to list work items")
		return
	}
	c.JSON(http.StatusOK, dto.ListWorkItemsResponse{WorkItems: items})
}

// listArchive godoc
// @Summary List archived work items
// @Description Archived work items, most recently archived first, with cursor pagination
// @Tags work-items
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListArchiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items/archive [get]
func (h *workItemHandler) listArchive(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListArchiveParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	items, next, err := h.workItemService.ListArchivedWorkItems(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		writeError(c, err, "Failed to list archived work items")
		return
	}
	c.JSON(http.StatusOK, dto.ListArchiveResponse{WorkItems: items, NextToken: next})
}

// getWorkItem godoc
// @Summary Get a work item
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID"
// @Success 200 {object} dto.WorkItemDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items/{id} [get]
func (h *workItemHandler) getWorkItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	detail, err := h.workItemService.GetWorkItem(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve work item")
		return
	}
	c.JSON(http.StatusOK, dto.WorkItemDetailResponse{WorkItem: detail.WorkItem, Steps: detail.Steps})
}

// applyTransition godoc
// @Summary Change a work item's status and progress
// @Description Managers commit the change immediately (200). Personnel create a pending proposal (202).
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID"
// @Param transition body dto.TransitionRequest true "Target status and progress step (0-10)"
// @Success 200 {object} dto.TransitionResponse "Committed"
// @Success 202 {object} dto.TransitionResponse "Stored for review"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items/{id}/transitions [post]
func (h *workItemHandler) applyTransition(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	workItemID := c.Param("id")
	result, err := h.workItemService.ApplyTransition(c.Request.Context(), workItemID, userID, req)
	if err != nil {
		writeError(c, err, "Failed to apply transition")
		return
	}

	status := http.StatusOK
	if result.Pending {
		status = http.StatusAccepted
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transition handled",
		slog.String("work_item_id", workItemID),
		slog.Bool("pending", result.Pending))
	c.JSON(status, dto.ToTransitionResponse(result))
}

// listHistory godoc
// @Summary Status history of a work item
// @Description Committed transitions, oldest first
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items/{id}/history [get]
func (h *workItemHandler) listHistory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	entries, err := h.workItemService.ListHistory(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, dto.ListHistoryResponse{Entries: entries})
}

// listUpdates godoc
// @Summary Proposals for a work item
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID"
// @Param state query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} dto.ListUpdatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-items/{id}/updates [get]
func (h *workItemHandler) listUpdates(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListUpdatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	var state *domain.UpdateState
	if params.State != "" {
		s := domain.UpdateState(params.State)
		state = &s
	}
	updates, err := h.approvalService.ListUpdates(c.Request.Context(), userID, c.Param("id"), state)
	if err != nil {
		writeError(c, err, "Failed to list updates")
		return
	}
	c.JSON(http.StatusOK, dto.ListUpdatesResponse{Updates: updates})
}

// resolveUpdate godoc
// @Summary Approve or reject a proposal
// @Tags work-items
// @Accept json
// @Produce json
// @Param updateID path string true "Proposal ID"
// @Param decision body dto.ResolveUpdateRequest true "Decision"
// @Success 200 {object} dto.ResolveUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already resolved"
// @Security BearerAuth
// @Router /work-item-updates/{updateID}/resolve [post]
func (h *workItemHandler) resolveUpdate(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.ResolveUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.approvalService.ResolveUpdate(c.Request.Context(), c.Param("updateID"), userID, req)
	if err != nil {
		writeError(c, err, "Failed to resolve update")
		return
	}
	c.JSON(http.StatusOK, dto.ResolveUpdateResponse{Approved: *req.Approved, WorkItem: item})
}
