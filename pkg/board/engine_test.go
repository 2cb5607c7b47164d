package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCard(title string, stage Stage) Card {
	return Card{
		Id:    uuid.New(),
		Title: title,
		Stage: stage,
	}
}

func TestNewState_GroupsByStage(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	c := makeCard("c", StageNew)

	s := NewState([]Card{a, b, c})

	newCol := s.Column(StageNew)
	require.Len(t, newCol, 2)
	assert.Equal(t, a.Id, newCol[0].Id)
	assert.Equal(t, c.Id, newCol[1].Id)

	assert.Len(t, s.Column(StageContacted), 1)
	assert.Empty(t, s.Column(StageWon))
	assert.Equal(t, 0, s.Dropped())
}

func TestNewState_DropsUnknownStages(t *testing.T) {
	a := makeCard("a", StageNew)
	bad := makeCard("bad", Stage("Archived"))

	s := NewState([]Card{a, bad})

	total := 0
	for _, stage := range Stages {
		total += len(s.Column(stage))
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, s.Dropped())

	_, _, found := s.Find(bad.Id)
	assert.False(t, found)
}

func TestResolveTarget_ColumnDropAppends(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	s := NewState([]Card{a, b})

	ev, err := s.ResolveTarget(a.Id, DropTarget{Column: StageContacted})
	require.NoError(t, err)
	assert.Equal(t, StageContacted, ev.To)
	assert.Equal(t, 1, ev.Index)
}

func TestResolveTarget_EmptyColumnAppendsAtZero(t *testing.T) {
	a := makeCard("a", StageNew)
	s := NewState([]Card{a})

	ev, err := s.ResolveTarget(a.Id, DropTarget{Column: StageWon})
	require.NoError(t, err)
	assert.Equal(t, StageWon, ev.To)
	assert.Equal(t, 0, ev.Index)
}

func TestResolveTarget_CardDropUsesPointerMidpoint(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	s := NewState([]Card{a, b})

	tests := []struct {
		name   string
		target DropTarget
		want   int
	}{
		{
			name: "pointer above midpoint inserts before",
			target: DropTarget{
				CardId:      b.Id,
				CardTop:     100,
				CardHeight:  40,
				PointerY:    110,
				HasGeometry: true,
			},
			want: 0,
		},
		{
			name: "pointer below midpoint inserts after",
			target: DropTarget{
				CardId:      b.Id,
				CardTop:     100,
				CardHeight:  40,
				PointerY:    130,
				HasGeometry: true,
			},
			want: 1,
		},
		{
			name: "pointer exactly at midpoint inserts after",
			target: DropTarget{
				CardId:      b.Id,
				CardTop:     100,
				CardHeight:  40,
				PointerY:    120,
				HasGeometry: true,
			},
			want: 1,
		},
		{
			name:   "no geometry inserts after",
			target: DropTarget{CardId: b.Id},
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := s.ResolveTarget(a.Id, tt.target)
			require.NoError(t, err)
			assert.Equal(t, StageContacted, ev.To)
			assert.Equal(t, tt.want, ev.Index)
		})
	}
}

func TestResolveTarget_UnknownTarget(t *testing.T) {
	a := makeCard("a", StageNew)
	s := NewState([]Card{a})

	_, err := s.ResolveTarget(a.Id, DropTarget{Column: Stage("Archived")})
	assert.ErrorIs(t, err, ErrUnknownTarget)

	_, err = s.ResolveTarget(a.Id, DropTarget{CardId: uuid.New()})
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestApply_MovesCardAcrossColumns(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	c := makeCard("c", StageContacted)
	s := NewState([]Card{a, b, c})

	next, pending, err := Apply(s, MoveEvent{CardId: a.Id, To: StageContacted, Index: 1})
	require.NoError(t, err)
	require.NotNil(t, pending)

	col := next.Column(StageContacted)
	require.Len(t, col, 3)
	assert.Equal(t, b.Id, col[0].Id)
	assert.Equal(t, a.Id, col[1].Id)
	assert.Equal(t, c.Id, col[2].Id)
	assert.Equal(t, StageContacted, col[1].Stage)
	assert.Empty(t, next.Column(StageNew))

	assert.Equal(t, StageNew, pending.From)
	assert.Equal(t, 0, pending.FromIndex)
	assert.Equal(t, 1, pending.ToIndex)
	assert.Equal(t, uint64(1), next.Version(a.Id))

	// original snapshot untouched
	assert.Len(t, s.Column(StageNew), 1)
	assert.Equal(t, uint64(0), s.Version(a.Id))
}

func TestApply_SameColumnIsNoOp(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageNew)
	s := NewState([]Card{a, b})

	next, pending, err := Apply(s, MoveEvent{CardId: a.Id, To: StageNew, Index: 1})
	require.NoError(t, err)
	assert.Nil(t, pending)
	assert.Same(t, s, next)
	assert.Equal(t, uint64(0), next.Version(a.Id))
}

func TestApply_ClampsIndex(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	s := NewState([]Card{a, b})

	next, _, err := Apply(s, MoveEvent{CardId: a.Id, To: StageContacted, Index: 99})
	require.NoError(t, err)
	col := next.Column(StageContacted)
	require.Len(t, col, 2)
	assert.Equal(t, a.Id, col[1].Id)

	next, _, err = Apply(s, MoveEvent{CardId: a.Id, To: StageContacted, Index: -5})
	require.NoError(t, err)
	col = next.Column(StageContacted)
	require.Len(t, col, 2)
	assert.Equal(t, a.Id, col[0].Id)
}

func TestApply_UnknownCard(t *testing.T) {
	s := NewState([]Card{makeCard("a", StageNew)})

	_, _, err := Apply(s, MoveEvent{CardId: uuid.New(), To: StageWon})
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestRevert_RestoresSourcePosition(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageNew)
	c := makeCard("c", StageNew)
	s := NewState([]Card{a, b, c})

	next, pending, err := Apply(s, MoveEvent{CardId: b.Id, To: StageWon, Index: 0})
	require.NoError(t, err)

	reverted, ok := Revert(next, pending)
	require.True(t, ok)

	col := reverted.Column(StageNew)
	require.Len(t, col, 3)
	assert.Equal(t, a.Id, col[0].Id)
	assert.Equal(t, b.Id, col[1].Id)
	assert.Equal(t, c.Id, col[2].Id)
	assert.Empty(t, reverted.Column(StageWon))
	assert.Equal(t, uint64(2), reverted.Version(b.Id))
}

func TestRevert_SkipsWhenCardMovedAgain(t *testing.T) {
	a := makeCard("a", StageNew)
	s := NewState([]Card{a})

	s1, firstMove, err := Apply(s, MoveEvent{CardId: a.Id, To: StageContacted, Index: 0})
	require.NoError(t, err)

	s2, _, err := Apply(s1, MoveEvent{CardId: a.Id, To: StageVisit, Index: 0})
	require.NoError(t, err)

	// completion of the first move arrives late; it must not disturb the board
	s3, ok := Revert(s2, firstMove)
	assert.False(t, ok)
	assert.Same(t, s2, s3)
	require.Len(t, s3.Column(StageVisit), 1)
}

func TestTransitionScenario_MoveRevertMove(t *testing.T) {
	a := makeCard("a", StageNew)
	b := makeCard("b", StageContacted)
	s := NewState([]Card{a, b})

	s1, p1, err := Apply(s, MoveEvent{CardId: a.Id, To: StageContacted, Index: 0})
	require.NoError(t, err)

	s2, ok := Revert(s1, p1)
	require.True(t, ok)
	assert.Len(t, s2.Column(StageNew), 1)
	assert.Len(t, s2.Column(StageContacted), 1)

	s3, p3, err := Apply(s2, MoveEvent{CardId: a.Id, To: StageNegotiation, Index: 0})
	require.NoError(t, err)
	require.NotNil(t, p3)
	assert.Equal(t, uint64(3), s3.Version(a.Id))
	assert.Len(t, s3.Column(StageNegotiation), 1)
}
