package handler

import (
	"net/http"
	"time"

	"continuity/internal/domain"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type SpaceHandler struct {
	service *services.SpaceService
}

func NewSpaceHandler(service *services.SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

func (h *SpaceHandler) Create(c *gin.Context) {
	var req httpdto.SpaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	userID, _ := services.UserIDFromContext(c.Request.Context())
	space := domain.Space{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		CreatedBy:   userID,
		CreatedOn:   time.Now().UTC(),
	}

	if err := h.service.CreateSpace(c.Request.Context(), &space); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(space))
}

func (h *SpaceHandler) GetAll(c *gin.Context) {
	spaces, err := h.service.GetAllSpaces(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(spaces))
}

func (h *SpaceHandler) GetSingle(c *gin.Context) {
	id, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	space, err := h.service.GetSingleSpaceByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(space))
}

func (h *SpaceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	var req httpdto.SpaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	space, err := h.service.UpdateSpace(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(space))
}

// Search finds folders and snapshots by name within a space.
func (h *SpaceHandler) Search(c *gin.Context) {
	id, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	results, err := h.service.SearchContents(c.Request.Context(), id, c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(results))
}
