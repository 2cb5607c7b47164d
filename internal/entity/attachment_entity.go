package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attachment holds file metadata only; the file itself lives wherever
// FileURL points.
type Attachment struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	OpportunityId uuid.UUID
	FileName      string
	FileURL       string
	ContentType   string
	SizeBytes     int64
	CreatedAt     time.Time
}
