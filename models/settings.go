package models

import "time"

// Settings is a singleton row: exactly one record with ID = SettingsRowID.
const SettingsRowID uint = 1

type Settings struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	SiteName         string    `json:"site_name" gorm:"default:'Campus News'"`
	ContactEmail     string    `json:"contact_email"`
	AdsEmail         string    `json:"ads_email"`
	CommentsEnabled  bool      `json:"comments_enabled" gorm:"default:true"`
	AdsEnabled       bool      `json:"ads_enabled" gorm:"default:true"`
	StoriesEnabled   bool      `json:"stories_enabled" gorm:"default:true"`
	MaxUploadSizeMB  int       `json:"max_upload_size_mb" gorm:"default:10"`
	AllowedFileTypes string    `json:"allowed_file_types" gorm:"default:'image/jpeg,image/png,image/webp'"`
	UpdatedAt        time.Time `json:"updated_at"`
}
