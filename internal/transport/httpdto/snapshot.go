package httpdto

import "time"

type SnapshotCreateRequest struct {
	SpaceID  int    `json:"spaceId" binding:"required"`
	FolderID *int   `json:"folderId"`
	Name     string `json:"name" binding:"required"`

	Episode   *string `json:"episode"`
	Scene     *int    `json:"scene"`
	StoryDay  *int    `json:"storyDay"`
	Character *int    `json:"character"`
	Notes     *string `json:"notes"`
}

type SnapshotUpdateRequest struct {
	FolderID      *int       `json:"folderId"`
	Name          *string    `json:"name"`
	IsDeleted     *bool      `json:"isDeleted"`
	LastUpdatedBy *int       `json:"lastUpdatedBy"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn"`
	DeletedOn     *time.Time `json:"deletedOn"`
	DeletedBy     *int       `json:"deletedBy"`

	Episode   *string `json:"episode"`
	Scene     *int    `json:"scene"`
	StoryDay  *int    `json:"storyDay"`
	Character *int    `json:"character"`
	Notes     *string `json:"notes"`

	Skin        *string `json:"skin"`
	Brows       *string `json:"brows"`
	Eyes        *string `json:"eyes"`
	Lips        *string `json:"lips"`
	Effects     *string `json:"effects"`
	MakeupNotes *string `json:"makeupNotes"`

	Prep         *string `json:"prep"`
	Method       *string `json:"method"`
	StylingTools *string `json:"stylingTools"`
	Products     *string `json:"products"`
	HairNotes    *string `json:"hairNotes"`
}
