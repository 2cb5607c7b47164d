package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOpportunityRequest struct {
	Title      string     `json:"title" validate:"required,min=3"`
	ContactId  uuid.UUID  `json:"contact_id" validate:"required"`
	PropertyId *uuid.UUID `json:"property_id"`
	Stage      string     `json:"stage"`
	Value      float64    `json:"value" validate:"gte=0"`
}

type CreateOpportunityResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateOpportunityRequest struct {
	Id         uuid.UUID
	Title      string     `json:"title" validate:"required,min=3"`
	PropertyId *uuid.UUID `json:"property_id"`
	Value      float64    `json:"value" validate:"gte=0"`
}

type UpdateOpportunityResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowOpportunityResponse struct {
	Id        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Stage     string                `json:"stage"`
	Position  int                   `json:"position"`
	Value     float64               `json:"value"`
	Contact   *ShowContactResponse  `json:"contact,omitempty"`
	Property  *ShowPropertyResponse `json:"property,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt *time.Time            `json:"updated_at"`
}

// MoveCardRequest describes a drag/drop gesture on the pipeline board.
// OverId is either a stage name (dropping on a column) or the id of the card
// hovered over. Pointer geometry is optional; without it a card drop lands
// after the hovered card.
type MoveCardRequest struct {
	Id         uuid.UUID
	OverId     string   `json:"over_id" validate:"required"`
	CardTop    *float64 `json:"card_top"`
	CardHeight *float64 `json:"card_height"`
	PointerY   *float64 `json:"pointer_y"`
}

type MoveCardResponse struct {
	Id       uuid.UUID `json:"id"`
	Stage    string    `json:"stage"`
	Position int       `json:"position"`
	Reverted bool      `json:"reverted"`
}

type BoardCardResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Stage        string     `json:"stage"`
	Position     int        `json:"position"`
	Value        float64    `json:"value"`
	ContactName  string     `json:"contact_name,omitempty"`
	PropertyId   *uuid.UUID `json:"property_id,omitempty"`
	PropertyName string     `json:"property_name,omitempty"`
}

type BoardColumnResponse struct {
	Stage string              `json:"stage"`
	Cards []BoardCardResponse `json:"cards"`
}

type BoardResponse struct {
	Columns      []BoardColumnResponse `json:"columns"`
	DroppedCards int                   `json:"dropped_cards"`
}
