package sqlite

import "time"

// sessionRowID is the primary key of the only row the table ever holds.
const sessionRowID = 1

// sessionModel mirrors the 'sessions' table.
type sessionModel struct {
	ID              uint   `gorm:"primaryKey"`
	SealedToken     string `gorm:"not null"`
	Profile         []byte
	ProfileCachedAt *time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (sessionModel) TableName() string {
	return "sessions"
}
