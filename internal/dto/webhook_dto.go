package dto

import "time"

// IncomingWhatsAppMessage holds the fields parsed from a Twilio webhook form
// post. Body is the message text, From the sender in whatsapp:+E164 form.
type IncomingWhatsAppMessage struct {
	Body string
	From string
}

type ConversationTurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
