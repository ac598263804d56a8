package models

// BackupSetting is the singleton row (id=1) of backup preferences.
type BackupSetting struct {
	Base
	AutoBackup   bool    `gorm:"not null;default:false" json:"auto_backup"`
	LastBackupAt *string `json:"last_backup_at,omitempty"`
}
