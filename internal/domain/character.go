package domain

import "time"

// Character is a cast character snapshots can reference.
type Character struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	IsDeleted     bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedBy     int        `json:"createdBy"`
	LastUpdatedBy *int       `json:"lastUpdatedBy,omitempty"`
	CreatedOn     time.Time  `json:"createdOn"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn,omitempty"`
	DeletedOn     *time.Time `json:"deletedOn,omitempty"`
	DeletedBy     *int       `json:"deletedBy,omitempty"`
}

func (Character) TableName() string {
	return "characters"
}
