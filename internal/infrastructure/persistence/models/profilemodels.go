package models

import "time"

// Profile models use pointer fields so that record keys the client never
// submitted are stored as NULL; required columns then fail with a not-null
// violation at the storage layer instead of silently storing zero values.
//
// Multi-value fields (languages, channels, ...) are stored as JSON text.

type IPProfileModel struct {
	ID                    uint    `gorm:"primaryKey"`
	OpenID                *string `gorm:"column:openid;size:191;not null;index"`
	Name                  *string `gorm:"size:255;not null"`
	Contact               *string `gorm:"size:255;not null"`
	Location              *string `gorm:"size:255"`
	NotificationPrefs     *string `gorm:"size:255"`
	NotificationLanguages *string `gorm:"type:text"`
	TypesOfWork           *string `gorm:"type:text"`
	PGPKey                *string `gorm:"column:pgp_key;type:text"`
	SecureChannels        *string `gorm:"type:text"`
	Languages             *string `gorm:"type:text"`
	InternalLevel         *int
	EmailNotification     *bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (IPProfileModel) TableName() string {
	return "ip_profiles"
}

type SPProfileModel struct {
	ID                  uint    `gorm:"primaryKey"`
	OpenID              *string `gorm:"column:openid;size:191;not null;index"`
	Name                *string `gorm:"size:255;not null"`
	Services            *string `gorm:"type:text"`
	Description         *string `gorm:"type:text"`
	Contact             *string `gorm:"size:255;not null"`
	SecureChannels      *string `gorm:"type:text"`
	Fees                *string `gorm:"size:255"`
	Languages           *string `gorm:"type:text"`
	PGPKey              *string `gorm:"column:pgp_key;type:text"`
	StartTime           *string `gorm:"size:255"`
	PerWeekAvailability *string `gorm:"size:255"`
	EmailNotification   *bool
	Rating              *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (SPProfileModel) TableName() string {
	return "sp_profiles"
}
