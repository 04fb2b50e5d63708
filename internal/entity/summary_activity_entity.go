package entity

import (
	"time"

	"github.com/google/uuid"
)

// SummaryActivity is one audit row recorded by the activity consumer for
// every summary lifecycle event (created, saved, shared).
type SummaryActivity struct {
	Id        uuid.UUID
	SummaryId uuid.UUID
	UserId    uuid.UUID
	Action    string
	CreatedAt time.Time
}
