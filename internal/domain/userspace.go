package domain

import "time"

// SpaceRole is a user's role within a space.
type SpaceRole string

const (
	SpaceRoleOwner  SpaceRole = "OWNER"
	SpaceRoleEditor SpaceRole = "EDITOR"
	SpaceRoleViewer SpaceRole = "VIEWER"
)

// InvitationStatus tracks a pending space membership invite.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// UserSpace links a user to a space with a role and invitation state.
type UserSpace struct {
	ID                  int              `gorm:"primaryKey" json:"id"`
	UserID              int              `gorm:"not null;index" json:"userId"`
	SpaceID             int              `gorm:"not null;index" json:"spaceId"`
	Role                SpaceRole        `gorm:"not null" json:"role"`
	AddedBy             int              `json:"addedBy"`
	AddedOn             time.Time        `json:"addedOn"`
	LastUpdatedBy       int              `json:"lastUpdatedBy"`
	LastUpdatedOn       *time.Time       `json:"lastUpdatedOn,omitempty"`
	InvitationStatus    InvitationStatus `gorm:"not null" json:"invitationStatus"`
	InvitationToken     string           `json:"invitationToken"`
	InvitationExpiresOn *time.Time       `json:"invitationExpiresOn,omitempty"`
	LastAccessedOn      *time.Time       `json:"lastAccessedOn,omitempty"`
}

func (UserSpace) TableName() string {
	return "user_spaces"
}
