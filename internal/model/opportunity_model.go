package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Opportunity struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ContactId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	PropertyId *uuid.UUID     `gorm:"type:uuid;index"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Stage      string         `gorm:"type:varchar(50);not null;index"`
	Position   int            `gorm:"not null;default:0"`
	Value      float64        `gorm:"type:numeric(14,2);default:0"`
	Contact    *Contact       `gorm:"foreignKey:ContactId"`
	Property   *Property      `gorm:"foreignKey:PropertyId"`
	Assignee   *User          `gorm:"foreignKey:UserId"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}
