package entity

import "time"

// SiteSetting is a key/value pair for site-wide configuration (server IP,
// discord invite, maintenance banner, store currency).
type SiteSetting struct {
	Key       string    `gorm:"size:100;primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
