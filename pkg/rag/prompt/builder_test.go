package prompt

import (
	"fmt"
	"strings"
	"testing"

	"estate-crm-be/internal/constant"
	"estate-crm-be/pkg/rag/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContext_FormatsOneLinePerProperty(t *testing.T) {
	id := uuid.New()
	matches := []search.PropertyMatch{
		{
			Id:          id,
			Title:       "Cozy Downtown Condo",
			Price:       250000,
			Description: "2 bed condo near the station",
			ImageURL:    "https://cdn.example.com/condo.jpg",
			Similarity:  0.87,
		},
	}

	block := BuildContext(matches)

	expected := fmt.Sprintf(
		"- Cozy Downtown Condo (Price: 250000, ID: %s): 2 bed condo near the station. Image: https://cdn.example.com/condo.jpg",
		id,
	)
	assert.Equal(t, expected, block)
}

func TestBuildContext_JoinsWithNewlines(t *testing.T) {
	matches := []search.PropertyMatch{
		{Id: uuid.New(), Title: "A", Price: 1},
		{Id: uuid.New(), Title: "B", Price: 2},
	}

	block := BuildContext(matches)

	lines := strings.Split(block, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "- A "))
	assert.True(t, strings.HasPrefix(lines[1], "- B "))
}

func TestBuildContext_NoMatchesUsesSentinel(t *testing.T) {
	assert.Equal(t, constant.WebhookNoMatchContext, BuildContext(nil))
	assert.Equal(t, constant.WebhookNoMatchContext, BuildContext([]search.PropertyMatch{}))
}

func TestBuildMessages_OrderAndRoles(t *testing.T) {
	messages := BuildMessages("ctx-block", "do you have condos?")

	require.Len(t, messages, 3)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, constant.WebhookSystemPrompt, messages[0].Content)
	assert.Equal(t, "system", messages[1].Role)
	assert.Equal(t, "Context Properties:\nctx-block", messages[1].Content)
	assert.Equal(t, "user", messages[2].Role)
	assert.Equal(t, "do you have condos?", messages[2].Content)
}
