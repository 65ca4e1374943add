package entity

import "time"

// Token is the opaque bearer credential bound 1:1 to an identity.
// The value itself is the primary key (64-character hex string), minted
// once on first login or registration and never rotated.
type Token struct {
	ID         string    `gorm:"primaryKey;size:64"` // Token value
	IdentityID uint      `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (Token) TableName() string {
	return "tokens"
}
