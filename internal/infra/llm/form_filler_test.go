package llm

import (
	"context"
	"testing"

	"foundmoney/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormFiller_Fill(t *testing.T) {
	client, api := newTestClient(t, map[string]fakeReply{
		"primary": {input: `{"full_name":"Ada Lovelace","phone":null,"email":"  ","invented":"x"}`},
	})

	fields := map[string]entity.FormField{
		"full_name": {Label: "Full name", Required: true},
		"phone":     {Description: "Daytime phone", Required: true},
		"email":     {},
	}

	filled, err := NewFormFiller(client).Fill(context.Background(), fields, map[string]any{"first_name": "Ada"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"full_name": "Ada Lovelace"}, filled)
	assert.Contains(t, api.firstPrompt(), `"first_name": "Ada"`)
}

func TestFormSchema(t *testing.T) {
	schema := formSchema(map[string]entity.FormField{
		"b": {Required: true},
		"a": {Label: "A label", Required: true},
		"c": {},
	})

	assert.Equal(t, []string{"a", "b"}, schema.Required)
	assert.Equal(t, "A label", schema.Properties["a"].(map[string]any)["description"])
	assert.Equal(t, "b", schema.Properties["b"].(map[string]any)["description"])
}
