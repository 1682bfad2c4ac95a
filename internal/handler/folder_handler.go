package handler

import (
	"net/http"
	"time"

	"continuity/internal/domain"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	service *services.FolderService
}

func NewFolderHandler(service *services.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

func (h *FolderHandler) Create(c *gin.Context) {
	var req httpdto.FolderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	userID, _ := services.UserIDFromContext(c.Request.Context())
	folder := domain.Folder{
		SpaceID:     req.SpaceID,
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
		CreatedOn:   time.Now().UTC(),
	}

	if err := h.service.CreateFolder(c.Request.Context(), &folder); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(folder))
}

func (h *FolderHandler) GetSingle(c *gin.Context) {
	id, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	folder, err := h.service.GetSingleFolderByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(folder))
}

func (h *FolderHandler) ListBySpace(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	folders, err := h.service.GetAllBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(folders))
}

func (h *FolderHandler) ListByParent(c *gin.Context) {
	parentID, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	folders, err := h.service.GetAllByParentID(c.Request.Context(), parentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(folders))
}

func (h *FolderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "folderId")
	if !ok {
		return
	}
	var req httpdto.FolderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	folder, err := h.service.UpdateFolder(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(folder))
}
