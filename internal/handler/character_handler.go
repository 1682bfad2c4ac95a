package handler

import (
	"net/http"
	"time"

	"continuity/internal/domain"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	service *services.CharacterService
}

func NewCharacterHandler(service *services.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

func (h *CharacterHandler) Create(c *gin.Context) {
	var req httpdto.CharacterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	userID, _ := services.UserIDFromContext(c.Request.Context())
	character := domain.Character{
		Name:      req.Name,
		CreatedBy: userID,
		CreatedOn: time.Now().UTC(),
	}

	if err := h.service.CreateCharacter(c.Request.Context(), &character); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(character))
}

func (h *CharacterHandler) GetAll(c *gin.Context) {
	characters, err := h.service.GetAllCharacters(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(characters))
}

func (h *CharacterHandler) GetSingle(c *gin.Context) {
	id, ok := pathID(c, "characterId")
	if !ok {
		return
	}
	character, err := h.service.GetSingleCharacterByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(character))
}

func (h *CharacterHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "characterId")
	if !ok {
		return
	}
	var req httpdto.CharacterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	character, err := h.service.UpdateCharacter(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(character))
}
