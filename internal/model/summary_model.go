package model

import (
	"time"

	"github.com/google/uuid"
)

type Summary struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	OriginalContent string    `gorm:"type:text;not null"`
	Prompt          string    `gorm:"type:text;not null"`
	SummaryText     string    `gorm:"type:text;not null"`
	ShareId         string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Summary) TableName() string {
	return "summaries"
}
