package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"continuity/internal/compression"
	"continuity/internal/domain"
	"continuity/internal/services"
	"continuity/internal/storage"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	service    *services.AttachmentService
	store      storage.ObjectStorage
	compressor *compression.Compressor
}

func NewAttachmentHandler(service *services.AttachmentService, store storage.ObjectStorage, compressor *compression.Compressor) *AttachmentHandler {
	return &AttachmentHandler{service: service, store: store, compressor: compressor}
}

// Upload accepts a multipart image, validates the metadata before any
// remote work, compresses the payload, stores it remotely and only
// then persists the attachment row. Metadata rejection therefore never
// leaves an orphaned remote object.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("file is required", "INVALID_REQUEST"))
		return
	}

	spaceID, err := strconv.Atoi(c.PostForm("spaceId"))
	if err != nil {
		spaceID = 0
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	userID, _ := services.UserIDFromContext(c.Request.Context())
	a := domain.Attachment{
		SpaceID:    spaceID,
		SnapshotID: optionalFormInt(c, "snapshotId"),
		FolderID:   optionalFormInt(c, "folderId"),
		Name:       name,
		Size:       fileHeader.Size,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		AddedBy:    userID,
		AddedOn:    time.Now().UTC(),
	}

	if err := h.service.ValidateMetadata(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}
	if !compression.IsSupportedFormat(a.MimeType) {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Only JPEG and PNG formats are supported", "INVALID_REQUEST"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable file", "INVALID_REQUEST"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unreadable file", "INVALID_REQUEST"))
		return
	}

	compressed, err := h.compressor.Compress(data, a.MimeType)
	if err != nil {
		writeError(c, err)
		return
	}

	key, err := h.store.Upload(c.Request.Context(), compressed, a.Name, a.MimeType, "attachments")
	if err != nil {
		writeError(c, err)
		return
	}

	a.Path = key
	a.Size = int64(len(compressed))
	a.IsStored = true

	if err := h.service.AddAttachment(c.Request.Context(), &a); err != nil {
		// Row rejected after the object landed remotely; remove the
		// object so nothing is orphaned.
		_ = h.store.Delete(c.Request.Context(), key)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(h.toResponse(a)))
}

func (h *AttachmentHandler) GetSingle(c *gin.Context) {
	id, ok := pathID(c, "attachmentId")
	if !ok {
		return
	}
	a, err := h.service.GetSingleByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponse(a)))
}

func (h *AttachmentHandler) ListBySpace(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	attachments, err := h.service.GetAllBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponses(attachments)))
}

func (h *AttachmentHandler) ListByFolder(c *gin.Context) {
	folderID, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	attachments, err := h.service.GetAllByFolderID(c.Request.Context(), folderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponses(attachments)))
}

func (h *AttachmentHandler) ListBySnapshot(c *gin.Context) {
	snapshotID, ok := pathID(c, "snapshotId")
	if !ok {
		return
	}
	attachments, err := h.service.GetAllBySnapshotID(c.Request.Context(), snapshotID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponses(attachments)))
}

func (h *AttachmentHandler) ListRootBySpace(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	attachments, err := h.service.GetAllRootBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponses(attachments)))
}

func (h *AttachmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "attachmentId")
	if !ok {
		return
	}
	var req httpdto.AttachmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	a, err := h.service.UpdateAttachment(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.toResponse(a)))
}

func (h *AttachmentHandler) toResponse(a domain.Attachment) httpdto.AttachmentResponse {
	return httpdto.AttachmentResponse{
		ID:         a.ID,
		SpaceID:    a.SpaceID,
		SnapshotID: a.SnapshotID,
		FolderID:   a.FolderID,
		Name:       a.Name,
		Path:       a.Path,
		URL:        h.store.FileURL(a.Path),
		Size:       a.Size,
		MimeType:   a.MimeType,
		IsDeleted:  a.IsDeleted,
		IsStored:   a.IsStored,
		AddedBy:    a.AddedBy,
		AddedOn:    a.AddedOn,
	}
}

func (h *AttachmentHandler) toResponses(attachments []domain.Attachment) []httpdto.AttachmentResponse {
	out := make([]httpdto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, h.toResponse(a))
	}
	return out
}

func optionalFormInt(c *gin.Context, name string) *int {
	raw := c.PostForm(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
