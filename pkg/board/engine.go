package board

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCardNotFound   = errors.New("card not found on board")
	ErrUnknownTarget  = errors.New("drop target is neither a stage nor a card")
	ErrStaleMove      = errors.New("card moved again before completion")
)

// Card is one opportunity rendered on the board.
type Card struct {
	Id           uuid.UUID
	Title        string
	Stage        Stage
	Value        float64
	ContactName  string
	PropertyId   *uuid.UUID
	PropertyName string
}

// State is an immutable snapshot of the board. Transitions produce a new
// State and leave the receiver untouched, so a caller can hold the previous
// snapshot for reconciliation.
type State struct {
	columns  map[Stage][]Card
	versions map[uuid.UUID]uint64
	dropped  int
}

// NewState groups cards into columns by their Stage, preserving input order
// within each column. Cards carrying an unknown stage are not placed; they
// are counted in Dropped.
func NewState(cards []Card) *State {
	s := &State{
		columns:  make(map[Stage][]Card, len(Stages)),
		versions: make(map[uuid.UUID]uint64, len(cards)),
	}
	for _, stage := range Stages {
		s.columns[stage] = nil
	}
	for _, c := range cards {
		if !IsValidStage(c.Stage) {
			s.dropped++
			continue
		}
		s.columns[c.Stage] = append(s.columns[c.Stage], c)
		s.versions[c.Id] = 0
	}
	return s
}

// Column returns a copy of one column's cards.
func (s *State) Column(stage Stage) []Card {
	col := s.columns[stage]
	out := make([]Card, len(col))
	copy(out, col)
	return out
}

// Dropped reports how many input cards carried an unknown stage.
func (s *State) Dropped() int {
	return s.dropped
}

// Find locates a card, returning its column and index within it.
func (s *State) Find(id uuid.UUID) (Stage, int, bool) {
	for _, stage := range Stages {
		for i, c := range s.columns[stage] {
			if c.Id == id {
				return stage, i, true
			}
		}
	}
	return "", 0, false
}

// Version returns the move counter for a card. It increases on every applied
// or reverted move, which lets completions of older moves be recognised as
// stale.
func (s *State) Version(id uuid.UUID) uint64 {
	return s.versions[id]
}

func (s *State) clone() *State {
	n := &State{
		columns:  make(map[Stage][]Card, len(s.columns)),
		versions: make(map[uuid.UUID]uint64, len(s.versions)),
		dropped:  s.dropped,
	}
	for stage, col := range s.columns {
		cards := make([]Card, len(col))
		copy(cards, col)
		n.columns[stage] = cards
	}
	for id, v := range s.versions {
		n.versions[id] = v
	}
	return n
}

// DropTarget describes what the dragged card is released over. Either Column
// is a stage name (the card was dropped on empty column space) or CardId
// identifies the hovered card. Pointer geometry is optional.
type DropTarget struct {
	Column      Stage
	CardId      uuid.UUID
	CardTop     float64
	CardHeight  float64
	PointerY    float64
	HasGeometry bool
}

// MoveEvent is a resolved drop: the card and where it should land.
type MoveEvent struct {
	CardId uuid.UUID
	To     Stage
	Index  int
}

// PendingMove records an applied move so its persistence outcome can be
// reconciled later. Version is the card's counter after the move.
type PendingMove struct {
	CardId    uuid.UUID
	From      Stage
	To        Stage
	FromIndex int
	ToIndex   int
	Version   uint64
}

// ResolveTarget turns a raw drop target into a MoveEvent. Dropping on a
// column appends to it. Dropping on a card inserts before that card, or after
// it when the pointer sits at or below the card's vertical midpoint. Without
// pointer geometry the drop lands after the hovered card.
func (s *State) ResolveTarget(cardId uuid.UUID, target DropTarget) (MoveEvent, error) {
	if _, _, ok := s.Find(cardId); !ok {
		return MoveEvent{}, ErrCardNotFound
	}

	if target.CardId != uuid.Nil {
		stage, idx, ok := s.Find(target.CardId)
		if !ok {
			return MoveEvent{}, ErrUnknownTarget
		}
		if !target.HasGeometry {
			return MoveEvent{CardId: cardId, To: stage, Index: idx + 1}, nil
		}
		midpoint := target.CardTop + target.CardHeight/2
		if target.PointerY >= midpoint {
			return MoveEvent{CardId: cardId, To: stage, Index: idx + 1}, nil
		}
		return MoveEvent{CardId: cardId, To: stage, Index: idx}, nil
	}

	if IsValidStage(target.Column) {
		return MoveEvent{CardId: cardId, To: target.Column, Index: len(s.columns[target.Column])}, nil
	}

	return MoveEvent{}, ErrUnknownTarget
}

// Apply executes a move, returning the next snapshot and a PendingMove for
// reconciliation. A move within the card's current column is a no-op: the
// same snapshot comes back with a nil PendingMove.
func Apply(s *State, ev MoveEvent) (*State, *PendingMove, error) {
	from, fromIdx, ok := s.Find(ev.CardId)
	if !ok {
		return s, nil, ErrCardNotFound
	}
	if !IsValidStage(ev.To) {
		return s, nil, ErrUnknownTarget
	}
	if from == ev.To {
		return s, nil, nil
	}

	n := s.clone()
	card := n.columns[from][fromIdx]
	n.columns[from] = append(n.columns[from][:fromIdx], n.columns[from][fromIdx+1:]...)

	idx := ev.Index
	if idx < 0 {
		idx = 0
	}
	if idx > len(n.columns[ev.To]) {
		idx = len(n.columns[ev.To])
	}

	card.Stage = ev.To
	col := n.columns[ev.To]
	col = append(col, Card{})
	copy(col[idx+1:], col[idx:])
	col[idx] = card
	n.columns[ev.To] = col

	n.versions[ev.CardId]++

	return n, &PendingMove{
		CardId:    ev.CardId,
		From:      from,
		To:        ev.To,
		FromIndex: fromIdx,
		ToIndex:   idx,
		Version:   n.versions[ev.CardId],
	}, nil
}

// Revert undoes a pending move after its persistence failed, placing the card
// back in its source column at its original index. A revert is skipped when
// the card has moved again since: the pending version no longer matches.
func Revert(s *State, p *PendingMove) (*State, bool) {
	if p == nil {
		return s, false
	}
	if s.versions[p.CardId] != p.Version {
		return s, false
	}
	cur, curIdx, ok := s.Find(p.CardId)
	if !ok {
		return s, false
	}

	n := s.clone()
	card := n.columns[cur][curIdx]
	n.columns[cur] = append(n.columns[cur][:curIdx], n.columns[cur][curIdx+1:]...)

	idx := p.FromIndex
	if idx > len(n.columns[p.From]) {
		idx = len(n.columns[p.From])
	}

	card.Stage = p.From
	col := n.columns[p.From]
	col = append(col, Card{})
	copy(col[idx+1:], col[idx:])
	col[idx] = card
	n.columns[p.From] = col

	n.versions[p.CardId]++
	return n, true
}
