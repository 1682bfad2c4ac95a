package httpdto

import "time"

type CharacterCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CharacterUpdateRequest struct {
	Name          *string    `json:"name"`
	IsDeleted     *bool      `json:"isDeleted"`
	LastUpdatedBy *int       `json:"lastUpdatedBy"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn"`
	DeletedOn     *time.Time `json:"deletedOn"`
	DeletedBy     *int       `json:"deletedBy"`
}
