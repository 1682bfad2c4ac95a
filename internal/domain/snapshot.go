package domain

import "time"

// Snapshot is a continuity record: the makeup/hair/costume state of a
// character for a given scene, with up to six attached reference
// images.
type Snapshot struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	SpaceID       int        `gorm:"not null;index" json:"spaceId"`
	FolderID      *int       `gorm:"index" json:"folderId,omitempty"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	IsDeleted     bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedBy     int        `json:"createdBy"`
	LastUpdatedBy *int       `json:"lastUpdatedBy,omitempty"`
	CreatedOn     time.Time  `json:"createdOn"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn,omitempty"`
	DeletedOn     *time.Time `json:"deletedOn,omitempty"`
	DeletedBy     *int       `json:"deletedBy,omitempty"`

	Episode   *string `json:"episode,omitempty"`
	Scene     *int    `json:"scene,omitempty"`
	StoryDay  *int    `json:"storyDay,omitempty"`
	Character *int    `json:"character,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	// Makeup continuity
	Skin        *string `json:"skin,omitempty"`
	Brows       *string `json:"brows,omitempty"`
	Eyes        *string `json:"eyes,omitempty"`
	Lips        *string `json:"lips,omitempty"`
	Effects     *string `json:"effects,omitempty"`
	MakeupNotes *string `json:"makeupNotes,omitempty"`

	// Hair continuity
	Prep         *string `json:"prep,omitempty"`
	Method       *string `json:"method,omitempty"`
	StylingTools *string `json:"stylingTools,omitempty"`
	Products     *string `json:"products,omitempty"`
	HairNotes    *string `json:"hairNotes,omitempty"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}
