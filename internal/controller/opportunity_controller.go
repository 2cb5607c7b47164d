package controller

import (
	"errors"

	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/pkg/serverutils"
	"estate-crm-be/internal/service"
	"estate-crm-be/pkg/board"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOpportunityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Board(ctx *fiber.Ctx) error
	MoveCard(ctx *fiber.Ctx) error
	AuditLogs(ctx *fiber.Ctx) error
	AddNote(ctx *fiber.Ctx) error
	Notes(ctx *fiber.Ctx) error
	DeleteNote(ctx *fiber.Ctx) error
	AddAttachment(ctx *fiber.Ctx) error
	Attachments(ctx *fiber.Ctx) error
	DeleteAttachment(ctx *fiber.Ctx) error
}

type opportunityController struct {
	opportunityService service.IOpportunityService
	noteService        service.INoteService
	attachmentService  service.IAttachmentService
}

func NewOpportunityController(
	opportunityService service.IOpportunityService,
	noteService service.INoteService,
	attachmentService service.IAttachmentService,
) IOpportunityController {
	return &opportunityController{
		opportunityService: opportunityService,
		noteService:        noteService,
		attachmentService:  attachmentService,
	}
}

func (c *opportunityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/opportunity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("board", c.Board)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/move", c.MoveCard)
	h.Delete(":id", c.Delete)
	h.Get(":id/audit", c.AuditLogs)
	h.Post(":id/notes", c.AddNote)
	h.Get(":id/notes", c.Notes)
	h.Delete(":id/notes/:noteId", c.DeleteNote)
	h.Post(":id/attachments", c.AddAttachment)
	h.Get(":id/attachments", c.Attachments)
	h.Delete(":id/attachments/:attachmentId", c.DeleteAttachment)
}

func (c *opportunityController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateOpportunityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.opportunityService.CreateOpportunity(ctx.Context(), userId, &req)
	if err != nil {
		return translateBoardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create opportunity", res))
}

func (c *opportunityController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateOpportunityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.opportunityService.UpdateOpportunity(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update opportunity", res))
}

func (c *opportunityController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.opportunityService.DeleteOpportunity(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete opportunity", nil))
}

func (c *opportunityController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.opportunityService.ListOpportunities(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list opportunities", res))
}

func (c *opportunityController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.opportunityService.GetOpportunity(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show opportunity", res))
}

func (c *opportunityController) Board(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.opportunityService.GetBoard(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show board", res))
}

func (c *opportunityController) MoveCard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.MoveCardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.opportunityService.MoveCard(ctx.Context(), userId, &req)
	if err != nil {
		return translateBoardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move card", res))
}

func (c *opportunityController) AuditLogs(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.opportunityService.ListAuditLogs(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list audit logs", res))
}

func (c *opportunityController) AddNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.OpportunityId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.AddNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add note", res))
}

func (c *opportunityController) Notes(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.noteService.ListNotes(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *opportunityController) DeleteNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	noteIdParam := ctx.Params("noteId")
	noteId, _ := uuid.Parse(noteIdParam)

	if err := c.noteService.DeleteNote(ctx.Context(), userId, id, noteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *opportunityController) AddAttachment(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.CreateAttachmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.OpportunityId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.attachmentService.AddAttachment(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add attachment", res))
}

func (c *opportunityController) Attachments(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.attachmentService.ListAttachments(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list attachments", res))
}

func (c *opportunityController) DeleteAttachment(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	attachmentIdParam := ctx.Params("attachmentId")
	attachmentId, _ := uuid.Parse(attachmentIdParam)

	if err := c.attachmentService.DeleteAttachment(ctx.Context(), userId, id, attachmentId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete attachment", nil))
}

// translateBoardError maps board engine errors onto HTTP statuses.
func translateBoardError(err error) error {
	switch {
	case errors.Is(err, board.ErrCardNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, board.ErrUnknownTarget):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, board.ErrStaleMove):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
