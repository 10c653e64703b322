package ai

import (
	"context"
	"testing"

	"fitguide/fitness-app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiGenerator_NoKey(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), config.AIConfig{})
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, gen)
}

func TestBuildContents(t *testing.T) {
	contents := buildContents(Prompt{
		History: []Turn{
			{Role: RoleUser, Message: "hi"},
			{Role: RoleModel, Message: "hello"},
		},
	})
	require.Len(t, contents, 2)
	assert.EqualValues(t, "user", contents[0].Role)
	assert.EqualValues(t, "model", contents[1].Role)
	assert.Equal(t, "hello", contents[1].Parts[0].Text)

	contents = buildContents(Prompt{
		Text:  "what is this?",
		Image: &Image{MIMEType: "image/jpeg", Data: []byte{1, 2, 3}},
	})
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	require.NotNil(t, contents[0].Parts[0].InlineData)
	assert.Equal(t, "image/jpeg", contents[0].Parts[0].InlineData.MIMEType)
	assert.Equal(t, []byte{1, 2, 3}, contents[0].Parts[0].InlineData.Data)
	assert.Equal(t, "what is this?", contents[0].Parts[1].Text)
}
