package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FullName  string
	Email     string
	Phone     string
	Source    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
