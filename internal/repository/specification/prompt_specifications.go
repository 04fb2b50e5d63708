package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultOrOwnedBy matches the built-in prompt templates (user_id IS NULL)
// plus the ones saved by the given user.
type DefaultOrOwnedBy struct {
	UserID uuid.UUID
}

func (s DefaultOrOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL OR user_id = ?", s.UserID)
}

// DefaultsOnly matches only the built-in templates.
type DefaultsOnly struct{}

func (s DefaultsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL")
}
