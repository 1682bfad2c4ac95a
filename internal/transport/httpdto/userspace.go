package httpdto

type UserSpaceCreateRequest struct {
	UserID  int    `json:"userId" binding:"required"`
	SpaceID int    `json:"spaceId" binding:"required"`
	Role    string `json:"role" binding:"required"`
}
