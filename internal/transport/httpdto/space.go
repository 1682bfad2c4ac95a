package httpdto

import (
	"time"

	"continuity/internal/domain"
)

type SpaceCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description *string `json:"description"`
}

type SpaceUpdateRequest struct {
	Name          *string    `json:"name"`
	Type          *string    `json:"type"`
	Description   *string    `json:"description"`
	IsDeleted     *bool      `json:"isDeleted"`
	LastUpdatedBy *int       `json:"lastUpdatedBy"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn"`
	DeletedOn     *time.Time `json:"deletedOn"`
	DeletedBy     *int       `json:"deletedBy"`
}

// SearchResults groups space content search hits by kind.
type SearchResults struct {
	Folders   []domain.Folder   `json:"folders"`
	Snapshots []domain.Snapshot `json:"snapshots"`
}
