package httpdto

import "time"

// AttachmentUpdateRequest is a partial update; nil fields keep the
// existing value.
type AttachmentUpdateRequest struct {
	SnapshotID    *int       `json:"snapshotId"`
	FolderID      *int       `json:"folderId"`
	Name          *string    `json:"name"`
	Path          *string    `json:"path"`
	Size          *int64     `json:"size"`
	MimeType      *string    `json:"mimeType"`
	IsDeleted     *bool      `json:"isDeleted"`
	LastUpdatedBy *int       `json:"lastUpdatedBy"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn"`
	DeletedOn     *time.Time `json:"deletedOn"`
	DeletedBy     *int       `json:"deletedBy"`
}

// AttachmentResponse decorates an attachment with its resolved URL.
type AttachmentResponse struct {
	ID         int       `json:"id"`
	SpaceID    int       `json:"spaceId"`
	SnapshotID *int      `json:"snapshotId,omitempty"`
	FolderID   *int      `json:"folderId,omitempty"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	IsDeleted  bool      `json:"isDeleted"`
	IsStored   bool      `json:"isStored"`
	AddedBy    int       `json:"addedBy"`
	AddedOn    time.Time `json:"addedOn"`
}
