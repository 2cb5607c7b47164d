package service

import (
	"context"
	"log"
	"time"

	"estate-crm-be/internal/constant"
	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/pkg/serverutils"
	"estate-crm-be/internal/repository/memory"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/internal/websocket"
	"estate-crm-be/pkg/board"
	"estate-crm-be/pkg/events"
	"estate-crm-be/pkg/nats"

	"github.com/google/uuid"
)

type IOpportunityService interface {
	CreateOpportunity(ctx context.Context, userId uuid.UUID, req *dto.CreateOpportunityRequest) (*dto.CreateOpportunityResponse, error)
	UpdateOpportunity(ctx context.Context, userId uuid.UUID, req *dto.UpdateOpportunityRequest) (*dto.UpdateOpportunityResponse, error)
	DeleteOpportunity(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) error
	GetOpportunity(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) (*dto.ShowOpportunityResponse, error)
	ListOpportunities(ctx context.Context, userId uuid.UUID) ([]dto.ShowOpportunityResponse, error)
	GetBoard(ctx context.Context, userId uuid.UUID) (*dto.BoardResponse, error)
	MoveCard(ctx context.Context, userId uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error)
	ListAuditLogs(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.AuditLogResponse, error)
}

type opportunityService struct {
	uowFactory    unitofwork.RepositoryFactory
	sessions      *memory.BoardSessionRepository
	natsPublisher *nats.Publisher
	hub           *websocket.Hub
}

func NewOpportunityService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.BoardSessionRepository,
	natsPublisher *nats.Publisher,
	hub *websocket.Hub,
) IOpportunityService {
	return &opportunityService{
		uowFactory:    uowFactory,
		sessions:      sessions,
		natsPublisher: natsPublisher,
		hub:           hub,
	}
}

func (s *opportunityService) CreateOpportunity(ctx context.Context, userId uuid.UUID, req *dto.CreateOpportunityRequest) (*dto.CreateOpportunityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: req.ContactId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, serverutils.ErrNotFound
	}

	stage := req.Stage
	if stage == "" {
		stage = string(board.StageNew)
	}
	if !board.IsValidStage(board.Stage(stage)) {
		return nil, board.ErrUnknownTarget
	}

	maxPos, err := uow.OpportunityRepository().MaxPosition(ctx, userId, stage)
	if err != nil {
		return nil, err
	}

	opportunity := entity.Opportunity{
		Id:         uuid.New(),
		UserId:     userId,
		ContactId:  req.ContactId,
		PropertyId: req.PropertyId,
		Title:      req.Title,
		Stage:      stage,
		Position:   maxPos + 1,
		Value:      req.Value,
		CreatedAt:  time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OpportunityRepository().Create(ctx, &opportunity); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, opportunity.Id, constant.AuditActionCreate, map[string]interface{}{
		"title": opportunity.Title,
		"stage": opportunity.Stage,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Cached board snapshot is now behind the database.
	s.sessions.Delete(userId.String())

	return &dto.CreateOpportunityResponse{Id: opportunity.Id}, nil
}

func (s *opportunityService) UpdateOpportunity(ctx context.Context, userId uuid.UUID, req *dto.UpdateOpportunityRequest) (*dto.UpdateOpportunityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: req.Id}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, serverutils.ErrNotFound
	}

	opportunity.Title = req.Title
	opportunity.PropertyId = req.PropertyId
	opportunity.Value = req.Value

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OpportunityRepository().Update(ctx, opportunity); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, opportunity.Id, constant.AuditActionUpdate, map[string]interface{}{
		"title": opportunity.Title,
		"value": opportunity.Value,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sessions.Delete(userId.String())

	return &dto.UpdateOpportunityResponse{Id: opportunity.Id}, nil
}

func (s *opportunityService) DeleteOpportunity(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: opportunityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if opportunity == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.OpportunityRepository().Delete(ctx, opportunityId); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, opportunityId, constant.AuditActionDelete, nil)

	if err := uow.Commit(); err != nil {
		return err
	}

	s.sessions.Delete(userId.String())

	return nil
}

func (s *opportunityService) GetOpportunity(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) (*dto.ShowOpportunityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunities, err := uow.OpportunityRepository().FindAllWithRelations(ctx,
		specification.ByID{ID: opportunityId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(opportunities) == 0 {
		return nil, serverutils.ErrNotFound
	}

	res := toOpportunityResponse(opportunities[0])
	return &res, nil
}

func (s *opportunityService) ListOpportunities(ctx context.Context, userId uuid.UUID) ([]dto.ShowOpportunityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunities, err := uow.OpportunityRepository().FindAllWithRelations(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShowOpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		responses = append(responses, toOpportunityResponse(o))
	}
	return responses, nil
}

func toOpportunityResponse(o *entity.Opportunity) dto.ShowOpportunityResponse {
	res := dto.ShowOpportunityResponse{
		Id:        o.Id,
		Title:     o.Title,
		Stage:     o.Stage,
		Position:  o.Position,
		Value:     o.Value,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Contact != nil {
		contact := toContactResponse(o.Contact)
		res.Contact = &contact
	}
	if o.Property != nil {
		property := toPropertyResponse(o.Property)
		res.Property = &property
	}
	return res
}

// GetBoard loads the user's opportunities fresh from the database, installs
// the snapshot as the live board session, and renders it column by column.
func (s *opportunityService) GetBoard(ctx context.Context, userId uuid.UUID) (*dto.BoardResponse, error) {
	state, err := s.loadBoardState(ctx, userId)
	if err != nil {
		return nil, err
	}

	sessionId := userId.String()
	if session, found := s.sessions.Get(sessionId); found {
		session.Replace(state)
	} else {
		s.sessions.Save(board.NewSession(sessionId, state))
	}

	return renderBoard(state), nil
}

// MoveCard applies a drag/drop gesture optimistically against the in-memory
// board, then persists the landing stage. When persistence fails the move is
// reverted, unless the card has already moved again.
func (s *opportunityService) MoveCard(ctx context.Context, userId uuid.UUID, req *dto.MoveCardRequest) (*dto.MoveCardResponse, error) {
	session, err := s.ensureSession(ctx, userId)
	if err != nil {
		return nil, err
	}

	target, err := s.resolveDropTarget(req)
	if err != nil {
		return nil, err
	}

	var pending *board.PendingMove
	err = session.Transition(func(state *board.State) (*board.State, error) {
		ev, err := state.ResolveTarget(req.Id, target)
		if err != nil {
			return nil, err
		}
		next, p, err := board.Apply(state, ev)
		if err != nil {
			return nil, err
		}
		pending = p
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if pending == nil {
		// Same-column drop. Nothing changed, nothing to persist.
		stage, idx, ok := session.Snapshot().Find(req.Id)
		if !ok {
			return nil, board.ErrCardNotFound
		}
		return &dto.MoveCardResponse{Id: req.Id, Stage: string(stage), Position: idx}, nil
	}

	if err := s.persistMove(ctx, userId, pending); err != nil {
		log.Printf("Warn: failed to persist move of card %s: %v", pending.CardId, err)
		return s.revertMove(userId, session, pending)
	}

	if s.natsPublisher != nil {
		event := events.NewStageChangedEvent(pending.CardId, userId, string(pending.From), string(pending.To), pending.ToIndex)
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("Warn: failed to publish stage changed event: %v", err)
		}
	}

	if s.hub != nil {
		s.hub.Send(userId, websocket.BoardEvent{
			Event:         "card_moved",
			OpportunityId: pending.CardId,
			FromStage:     string(pending.From),
			ToStage:       string(pending.To),
			Position:      pending.ToIndex,
		})
	}

	return &dto.MoveCardResponse{
		Id:       pending.CardId,
		Stage:    string(pending.To),
		Position: pending.ToIndex,
	}, nil
}

func (s *opportunityService) ListAuditLogs(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.AuditLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.AuditLogRepository().FindAll(ctx,
		specification.ByEntity{EntityType: constant.AuditEntityOpportunity, EntityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, dto.AuditLogResponse{
			Id:         l.Id,
			EntityType: l.EntityType,
			EntityId:   l.EntityId,
			Action:     l.Action,
			Changes:    l.Changes,
			CreatedAt:  l.CreatedAt,
		})
	}
	return responses, nil
}

// persistMove writes the new stage and position plus its audit row in one
// transaction.
func (s *opportunityService) persistMove(ctx context.Context, userId uuid.UUID, pending *board.PendingMove) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.OpportunityRepository().UpdateStage(ctx, pending.CardId, string(pending.To), pending.ToIndex); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, pending.CardId, constant.AuditActionStageChange, map[string]interface{}{
		"from_stage": string(pending.From),
		"to_stage":   string(pending.To),
		"position":   pending.ToIndex,
	})

	return uow.Commit()
}

func (s *opportunityService) revertMove(userId uuid.UUID, session *board.Session, pending *board.PendingMove) (*dto.MoveCardResponse, error) {
	reverted := false
	_ = session.Transition(func(state *board.State) (*board.State, error) {
		next, ok := board.Revert(state, pending)
		reverted = ok
		return next, nil
	})

	if !reverted {
		// The card moved again before this persistence attempt resolved.
		// The newer move owns the card now.
		return nil, board.ErrStaleMove
	}

	if s.hub != nil {
		s.hub.Send(userId, websocket.BoardEvent{
			Event:         "card_reverted",
			OpportunityId: pending.CardId,
			FromStage:     string(pending.To),
			ToStage:       string(pending.From),
			Position:      pending.FromIndex,
		})
	}

	return &dto.MoveCardResponse{
		Id:       pending.CardId,
		Stage:    string(pending.From),
		Position: pending.FromIndex,
		Reverted: true,
	}, nil
}

func (s *opportunityService) ensureSession(ctx context.Context, userId uuid.UUID) (*board.Session, error) {
	sessionId := userId.String()
	if session, found := s.sessions.Get(sessionId); found {
		return session, nil
	}

	state, err := s.loadBoardState(ctx, userId)
	if err != nil {
		return nil, err
	}
	session := board.NewSession(sessionId, state)
	s.sessions.Save(session)
	return session, nil
}

func (s *opportunityService) loadBoardState(ctx context.Context, userId uuid.UUID) (*board.State, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunities, err := uow.OpportunityRepository().FindAllWithRelations(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	cards := make([]board.Card, 0, len(opportunities))
	for _, o := range opportunities {
		card := board.Card{
			Id:         o.Id,
			Title:      o.Title,
			Stage:      board.Stage(o.Stage),
			Value:      o.Value,
			PropertyId: o.PropertyId,
		}
		if o.Contact != nil {
			card.ContactName = o.Contact.FullName
		}
		if o.Property != nil {
			card.PropertyName = o.Property.Title
		}
		cards = append(cards, card)
	}

	return board.NewState(cards), nil
}

func (s *opportunityService) resolveDropTarget(req *dto.MoveCardRequest) (board.DropTarget, error) {
	if overId, err := uuid.Parse(req.OverId); err == nil {
		target := board.DropTarget{CardId: overId}
		if req.CardTop != nil && req.CardHeight != nil && req.PointerY != nil {
			target.CardTop = *req.CardTop
			target.CardHeight = *req.CardHeight
			target.PointerY = *req.PointerY
			target.HasGeometry = true
		}
		return target, nil
	}

	stage := board.Stage(req.OverId)
	if !board.IsValidStage(stage) {
		return board.DropTarget{}, board.ErrUnknownTarget
	}
	return board.DropTarget{Column: stage}, nil
}

func renderBoard(state *board.State) *dto.BoardResponse {
	columns := make([]dto.BoardColumnResponse, 0, len(board.Stages))
	for _, stage := range board.Stages {
		cards := state.Column(stage)
		cardResponses := make([]dto.BoardCardResponse, 0, len(cards))
		for i, c := range cards {
			cardResponses = append(cardResponses, dto.BoardCardResponse{
				Id:           c.Id,
				Title:        c.Title,
				Stage:        string(c.Stage),
				Position:     i,
				Value:        c.Value,
				ContactName:  c.ContactName,
				PropertyId:   c.PropertyId,
				PropertyName: c.PropertyName,
			})
		}
		columns = append(columns, dto.BoardColumnResponse{
			Stage: string(stage),
			Cards: cardResponses,
		})
	}

	return &dto.BoardResponse{
		Columns:      columns,
		DroppedCards: state.Dropped(),
	}
}
