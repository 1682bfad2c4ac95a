package domain

import "time"

// Space is the top-level container a production crew works in.
type Space struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Description   *string    `json:"description,omitempty"`
	Type          string     `gorm:"not null" json:"type"`
	IsDeleted     bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedBy     int        `json:"createdBy"`
	LastUpdatedBy *int       `json:"lastUpdatedBy,omitempty"`
	CreatedOn     time.Time  `json:"createdOn"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn,omitempty"`
	DeletedOn     *time.Time `json:"deletedOn,omitempty"`
	DeletedBy     *int       `json:"deletedBy,omitempty"`
}

func (Space) TableName() string {
	return "spaces"
}
