package handlers

import (
	"net/http"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func newAttachmentHandler(as portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

// registerAttachmentRoutes registers upload, listing, download and delete routes.
func registerAttachmentRoutes(rg *gin.RouterGroup, as portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(as)

	attachments := rg.Group("/attachments")
	{
		attachments.POST("", h.uploadAttachment)
		attachments.GET("", h.listAttachments)
		attachments.GET("/:id/url", h.getDownloadURL)
		attachments.DELETE("/:id", h.deleteAttachment)
	}
}

// uploadAttachment godoc
// @Summary Upload an attachment
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param entityType formData string true "order, work_item or comment"
// @Param entityID formData string true "ID of the owning entity"
// @Param file formData file true "File to upload"
// @Success 201 {object} domain.Attachment
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments [post]
func (h *attachmentHandler) uploadAttachment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var form dto.UploadAttachmentForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		writeError(c, err, "Failed to read upload")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.UploadAttachment(c.Request.Context(), userID, dto.AttachmentUpload{
		EntityType: domain.AttachmentEntityType(form.EntityType),
		EntityID:   form.EntityID,
		Filename:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		SizeBytes:  header.Size,
		Body:       file,
	})
	if err != nil {
		writeError(c, err, "Failed to upload attachment")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// listAttachments godoc
// @Summary List attachments of an entity
// @Tags attachments
// @Produce json
// @Param entityType query string true "order, work_item or comment"
// @Param entityID query string true "ID of the owning entity"
// @Success 200 {object} dto.ListAttachmentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments [get]
func (h *attachmentHandler) listAttachments(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListAttachmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), userID,
		domain.AttachmentEntityType(params.EntityType), params.EntityID)
	if err != nil {
		writeError(c, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, dto.ListAttachmentsResponse{Attachments: attachments})
}

// getDownloadURL godoc
// @Summary Signed download URL
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} dto.AttachmentURLResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments/{id}/url [get]
func (h *attachmentHandler) getDownloadURL(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	url, expiresAt, err := h.attachmentService.GetDownloadURL(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to sign download URL")
		return
	}
	c.JSON(http.StatusOK, dto.AttachmentURLResponse{URL: url, ExpiresAt: expiresAt})
}

// deleteAttachment godoc
// @Summary Delete an attachment
// @Description Soft deletes the attachment. When an admin deletes it the stored file is removed as well.
// @Tags attachments
// @Accept json
// @Param id path string true "Attachment ID"
// @Param reason body dto.DeleteAttachmentRequest false "Reason"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *attachmentHandler) deleteAttachment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.DeleteAttachmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), userID, c.Param("id"), req.Reason); err != nil {
		writeError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
