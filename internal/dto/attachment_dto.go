package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAttachmentRequest struct {
	OpportunityId uuid.UUID
	FileName      string `json:"file_name" validate:"required,max=255"`
	FileURL       string `json:"file_url" validate:"required,url"`
	ContentType   string `json:"content_type"`
	SizeBytes     int64  `json:"size_bytes" validate:"gte=0"`
}

type CreateAttachmentResponse struct {
	Id uuid.UUID `json:"id"`
}

type AttachmentResponse struct {
	Id          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
