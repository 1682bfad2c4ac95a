package domain

import "time"

// Folder groups snapshots and attachments inside a space. Folders may
// nest via ParentID.
type Folder struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	SpaceID       int        `gorm:"not null;index" json:"spaceId"`
	ParentID      *int       `gorm:"index" json:"parentId,omitempty"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Description   *string    `json:"description,omitempty"`
	IsDeleted     bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedBy     int        `json:"createdBy"`
	LastUpdatedBy *int       `json:"lastUpdatedBy,omitempty"`
	CreatedOn     time.Time  `json:"createdOn"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn,omitempty"`
	DeletedOn     *time.Time `json:"deletedOn,omitempty"`
}

func (Folder) TableName() string {
	return "folders"
}
