package httpdto

import "time"

type FolderCreateRequest struct {
	SpaceID     int     `json:"spaceId" binding:"required"`
	ParentID    *int    `json:"parentId"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type FolderUpdateRequest struct {
	ParentID      *int       `json:"parentId"`
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	IsDeleted     *bool      `json:"isDeleted"`
	LastUpdatedBy *int       `json:"lastUpdatedBy"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn"`
	DeletedOn     *time.Time `json:"deletedOn"`
}
