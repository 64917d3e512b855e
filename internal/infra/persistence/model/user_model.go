package model

import "time"

// UserModel mirrors the 'users' table. IDs are the client's auth UIDs.
type UserModel struct {
	ID        string `gorm:"type:varchar(128);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
