package twiml

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageResponse(t *testing.T) {
	out := MessageResponse("We have 3 listings for you.")
	assert.Equal(t, "<Response><Message>We have 3 listings for you.</Message></Response>", out)
}

func TestMessageResponse_EscapesMarkup(t *testing.T) {
	out := MessageResponse(`Price < 500k & "cozy"`)

	var parsed struct {
		XMLName xml.Name `xml:"Response"`
		Message string   `xml:"Message"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, `Price < 500k & "cozy"`, parsed.Message)
}

func TestMessageResponse_EmptyReply(t *testing.T) {
	out := MessageResponse("")
	assert.Equal(t, "<Response><Message></Message></Response>", out)
}
