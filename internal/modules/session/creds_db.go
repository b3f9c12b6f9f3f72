package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// browserSessionRow is the database-backed replacement for the browser's
// local storage: one row per session cookie holding the credential trio.
type browserSessionRow struct {
	ID           string    `gorm:"primaryKey;type:char(36)"`
	AccessToken  string    `gorm:"type:text"`
	RefreshToken string    `gorm:"type:text"`
	IdentityJSON string    `gorm:"type:text"`
	ExpiresAt    time.Time `gorm:"type:datetime(3);not null;index:ix_browser_sessions_expires_at"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null"`
}

func (browserSessionRow) TableName() string { return "browser_sessions" }

// DBCreds persists one browser session's credentials in MySQL.
type DBCreds struct {
	db        *gorm.DB
	sessionID string
	ttl       time.Duration
}

func NewDBCreds(db *gorm.DB, sessionID string, ttl time.Duration) *DBCreds {
	return &DBCreds{db: db, sessionID: sessionID, ttl: ttl}
}

func (d *DBCreds) Load(ctx context.Context) (Record, bool, error) {
	var row browserSessionRow
	err := d.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", d.sessionID, time.Now()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return Record{
		Access:   row.AccessToken,
		Refresh:  row.RefreshToken,
		Identity: row.IdentityJSON,
	}, true, nil
}

// Save writes all three values in a single upsert.
func (d *DBCreds) Save(ctx context.Context, rec Record) error {
	now := time.Now()
	row := browserSessionRow{
		ID:           d.sessionID,
		AccessToken:  rec.Access,
		RefreshToken: rec.Refresh,
		IdentityJSON: rec.Identity,
		ExpiresAt:    now.Add(d.ttl),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return d.db.WithContext(ctx).Save(&row).Error
}

func (d *DBCreds) SetAccess(ctx context.Context, access string) error {
	return d.db.WithContext(ctx).
		Model(&browserSessionRow{}).
		Where("id = ?", d.sessionID).
		Updates(map[string]any{"access_token": access, "updated_at": time.Now()}).Error
}

func (d *DBCreds) Clear(ctx context.Context) error {
	return d.db.WithContext(ctx).
		Delete(&browserSessionRow{}, "id = ?", d.sessionID).Error
}
