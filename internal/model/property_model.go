package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Price       float64        `gorm:"type:numeric(14,2);not null"`
	Address     string         `gorm:"type:varchar(255)"`
	City        string         `gorm:"type:varchar(100);index"`
	Bedrooms    int            `gorm:"default:0"`
	Bathrooms   int            `gorm:"default:0"`
	AreaSqm     float64        `gorm:"type:numeric(10,2);default:0"`
	Status      string         `gorm:"type:varchar(50);not null;default:'available'"`
	ImageURL    string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Property) TableName() string {
	return "properties"
}
