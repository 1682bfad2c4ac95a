package domain

import "time"

// User represents the users table
type User struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedOn    time.Time  `json:"createdOn"`
	DeletedOn    *time.Time `json:"deletedOn,omitempty"`
	LastLoginOn  *time.Time `json:"lastLoginOn,omitempty"`
}

func (User) TableName() string {
	return "users"
}
