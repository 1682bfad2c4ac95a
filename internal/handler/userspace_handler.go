package handler

import (
	"net/http"

	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UserSpaceHandler struct {
	service *services.UserSpaceService
}

func NewUserSpaceHandler(service *services.UserSpaceService) *UserSpaceHandler {
	return &UserSpaceHandler{service: service}
}

func (h *UserSpaceHandler) AddMember(c *gin.Context) {
	var req httpdto.UserSpaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	addedBy, _ := services.UserIDFromContext(c.Request.Context())
	us, err := h.service.AddUserToSpace(c.Request.Context(), req.UserID, req.SpaceID, addedBy, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(us))
}

func (h *UserSpaceHandler) ListMembers(c *gin.Context) {
	spaceID, ok := pathID(c, "spaceId")
	if !ok {
		return
	}
	members, err := h.service.GetMembersBySpaceID(c.Request.Context(), spaceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(members))
}

func (h *UserSpaceHandler) ListMine(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}
	memberships, err := h.service.GetSpacesByUserID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(memberships))
}
