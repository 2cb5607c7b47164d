// Package twiml renders the minimal TwiML messaging response Twilio expects
// from a webhook.
package twiml

import (
	"bytes"
	"encoding/xml"
)

type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// MessageResponse wraps a reply in <Response><Message>...</Message></Response>,
// escaping the body as XML character data.
func MessageResponse(reply string) string {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	// reply text is model output; Encode guarantees valid escaping
	if err := enc.Encode(messagingResponse{Message: reply}); err != nil {
		return "<Response><Message></Message></Response>"
	}
	return buf.String()
}
