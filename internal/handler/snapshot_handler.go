package handler

import (
	"net/http"
	"time"

	"continuity/internal/domain"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	service *services.SnapshotService
}

func NewSnapshotHandler(service *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

func (h *SnapshotHandler) Create(c *gin.Context) {
	var req httpdto.SnapshotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	userID, _ := services.UserIDFromContext(c.Request.Context())
	snapshot := domain.Snapshot{
		SpaceID:   req.SpaceID,
		FolderID:  req.FolderID,
		Name:      req.Name,
		CreatedBy: userID,
		CreatedOn: time.Now().UTC(),
		Episode:   req.Episode,
		Scene:     req.Scene,
		StoryDay:  req.StoryDay,
		Character: req.Character,
		Notes:     req.Notes,
	}

	if err := h.service.CreateSnapshot(c.Request.Context(), &snapshot); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(snapshot))
}

func (h *SnapshotHandler) GetSingle(c *gin.Context) {
	id, ok := pathID(c, "snapshotId")
	if !ok {
		return
	}
	snapshot, err := h.service.GetSingleSnapshotByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(snapshot))
}

func (h *SnapshotHandler) ListBySpace(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	snapshots, err := h.service.GetAllBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(snapshots))
}

func (h *SnapshotHandler) ListByFolder(c *gin.Context) {
	folderID, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	snapshots, err := h.service.GetAllByFolderID(c.Request.Context(), folderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(snapshots))
}

func (h *SnapshotHandler) ListRootBySpace(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	snapshots, err := h.service.GetAllRootBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(snapshots))
}

func (h *SnapshotHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "snapshotId")
	if !ok {
		return
	}
	var req httpdto.SnapshotUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	snapshot, err := h.service.UpdateSnapshot(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(snapshot))
}
