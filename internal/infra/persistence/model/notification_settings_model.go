package model

import "time"

// NotificationSettingsModel mirrors the 'notification_settings' table, one row per user.
// NotificationTime keeps the client's "HH:MM" string; parsing happens in the domain.
type NotificationSettingsModel struct {
	UserID            string     `gorm:"type:varchar(128);primaryKey"`
	Enabled           bool       `gorm:"not null;default:false"`
	NotificationTime  string     `gorm:"type:varchar(5)"`
	Timezone          string     `gorm:"type:varchar(64)"`
	PreferredLanguage string     `gorm:"type:varchar(16)"`
	LastSentAt        *time.Time `gorm:"type:timestamptz"`
	UpdatedAt         *time.Time `gorm:"type:timestamptz;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}
