package entity

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a deal in the sales pipeline. Stage holds one of the
// pipeline stage names; Position orders cards within a stage column.
type Opportunity struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	ContactId  uuid.UUID
	PropertyId *uuid.UUID
	Title      string
	Stage      string
	Position   int
	Value      float64
	Contact    *Contact
	Property   *Property
	Assignee   *User
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
