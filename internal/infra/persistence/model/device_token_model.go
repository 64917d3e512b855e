package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel mirrors the 'device_tokens' table.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:varchar(128);not null;index:idx_device_tokens_user_token,priority:1"`
	Token     string    `gorm:"type:text;not null;index:idx_device_tokens_user_token,priority:2"`
	Platform  string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
