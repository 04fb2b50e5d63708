package model

import (
	"time"

	"github.com/google/uuid"
)

type PromptTemplate struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string     `gorm:"type:varchar(255);not null"`
	PromptText string     `gorm:"type:text;not null"`
	UserId     *uuid.UUID `gorm:"type:uuid;index"` // NULL = default prompt
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (PromptTemplate) TableName() string {
	return "prompt_templates"
}
