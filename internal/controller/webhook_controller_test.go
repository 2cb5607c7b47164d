package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"estate-crm-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatbotService struct {
	reply    string
	lastBody string
	lastFrom string
}

func (f *fakeChatbotService) HandleIncomingMessage(ctx context.Context, msg *dto.IncomingWhatsAppMessage) string {
	f.lastBody = msg.Body
	f.lastFrom = msg.From
	return f.reply
}

func (f *fakeChatbotService) GetConversation(ctx context.Context, sender string) ([]dto.ConversationTurnResponse, error) {
	return []dto.ConversationTurnResponse{}, nil
}

func newWebhookTestApp(svc *fakeChatbotService) *fiber.App {
	app := fiber.New()
	NewWebhookController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postWhatsAppForm(t *testing.T, app *fiber.App, form url.Values) (int, string, string) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/webhook/v1/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, resp.Header.Get("Content-Type"), string(body)
}

func TestWhatsAppWebhookRepliesWithTwiML(t *testing.T) {
	svc := &fakeChatbotService{reply: "We have 2 condos available in Jakarta."}
	app := newWebhookTestApp(svc)

	form := url.Values{}
	form.Set("Body", "any condos in jakarta?")
	form.Set("From", "whatsapp:+6281234567890")

	status, contentType, body := postWhatsAppForm(t, app, form)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "text/xml", contentType)
	assert.Equal(t, "<Response><Message>We have 2 condos available in Jakarta.</Message></Response>", body)

	assert.Equal(t, "any condos in jakarta?", svc.lastBody)
	assert.Equal(t, "whatsapp:+6281234567890", svc.lastFrom)
}

func TestWhatsAppWebhookAlwaysAnswers200(t *testing.T) {
	// Missing form fields must still produce a valid TwiML answer, Twilio
	// retries anything else.
	svc := &fakeChatbotService{reply: "Sorry, I encountered an error. Please try again later."}
	app := newWebhookTestApp(svc)

	status, contentType, body := postWhatsAppForm(t, app, url.Values{})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "text/xml", contentType)
	assert.Contains(t, body, "<Response><Message>")
	assert.Equal(t, "", svc.lastBody)
}

func TestWhatsAppWebhookEscapesReply(t *testing.T) {
	svc := &fakeChatbotService{reply: `Villas <under> $1M & "beachfront"`}
	app := newWebhookTestApp(svc)

	form := url.Values{}
	form.Set("Body", "beach villas?")
	form.Set("From", "whatsapp:+6281234567890")

	status, _, body := postWhatsAppForm(t, app, form)

	assert.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, body, "<under>")
	assert.Contains(t, body, "&lt;under&gt;")
}
