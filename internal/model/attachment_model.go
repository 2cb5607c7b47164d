package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attachment struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	OpportunityId uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName      string         `gorm:"type:varchar(255);not null"`
	FileURL       string         `gorm:"type:text;not null"`
	ContentType   string         `gorm:"type:varchar(100)"`
	SizeBytes     int64          `gorm:"not null;default:0"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Attachment) TableName() string {
	return "attachments"
}
