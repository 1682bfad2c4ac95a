package domain

import "time"

// Attachment represents one stored media object logically attached to
// a space, optionally filed into a folder and/or a snapshot.
//
// IsStored tracks whether the remote object is believed to still
// exist. It is set true at successful upload and flipped to false
// exactly once, by the cleanup reconciler, after a confirmed remote
// delete. Soft deleting a row leaves IsStored untouched.
type Attachment struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	SpaceID       int        `gorm:"not null;index" json:"spaceId"`
	SnapshotID    *int       `gorm:"index" json:"snapshotId,omitempty"`
	FolderID      *int       `gorm:"index" json:"folderId,omitempty"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Path          string     `gorm:"not null" json:"path"`
	Size          int64      `gorm:"not null" json:"size"`
	MimeType      string     `gorm:"not null" json:"mimeType"`
	IsDeleted     bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	IsStored      bool       `gorm:"not null;default:false;index" json:"isStored"`
	AddedBy       int        `json:"addedBy"`
	AddedOn       time.Time  `json:"addedOn"`
	LastUpdatedBy *int       `json:"lastUpdatedBy,omitempty"`
	LastUpdatedOn *time.Time `json:"lastUpdatedOn,omitempty"`
	DeletedOn     *time.Time `json:"deletedOn,omitempty"`
	DeletedBy     *int       `json:"deletedBy,omitempty"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// MaxAttachmentSize is the upload size ceiling in bytes.
const MaxAttachmentSize = 15 * 1024 * 1024

// MaxAttachmentsPerSnapshot caps non-deleted attachments per snapshot.
const MaxAttachmentsPerSnapshot = 6
