package controller

import (
	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/pkg/serverutils"
	"estate-crm-be/internal/service"
	"estate-crm-be/pkg/twiml"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	WhatsApp(ctx *fiber.Ctx) error
	Conversation(ctx *fiber.Ctx) error
}

type webhookController struct {
	chatbotService service.IChatbotService
}

func NewWebhookController(chatbotService service.IChatbotService) IWebhookController {
	return &webhookController{
		chatbotService: chatbotService,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook/v1")
	h.Post("/whatsapp", c.WhatsApp)
	h.Get("/conversation", serverutils.JwtMiddleware, c.Conversation)
}

// WhatsApp handles an inbound Twilio message. It always answers 200 with a
// TwiML body; Twilio retries anything else and the sender would see nothing.
func (c *webhookController) WhatsApp(ctx *fiber.Ctx) error {
	msg := dto.IncomingWhatsAppMessage{
		Body: ctx.FormValue("Body"),
		From: ctx.FormValue("From"),
	}

	reply := c.chatbotService.HandleIncomingMessage(ctx.Context(), &msg)

	ctx.Set(fiber.HeaderContentType, "text/xml")
	return ctx.Status(fiber.StatusOK).SendString(twiml.MessageResponse(reply))
}

func (c *webhookController) Conversation(ctx *fiber.Ctx) error {
	sender := ctx.Query("sender")
	if sender == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sender query param is required")
	}

	res, err := c.chatbotService.GetConversation(ctx.Context(), sender)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}
