package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ideaJSON = `{
	"project_title": "Clinic Queue",
	"description": "Walk-in queue tracker for small clinics",
	"languages": ["Go", "HTMX"],
	"steps": ["Model the queue", "Build the API", "Ship the UI"],
	"scale_up_ideas": ["SMS alerts"]
}`

func TestParseProjectIdea(t *testing.T) {
	t.Run("valid reply", func(t *testing.T) {
		idea, err := ParseProjectIdea([]byte(ideaJSON))
		require.NoError(t, err)

		assert.Equal(t, "Clinic Queue", idea.ProjectTitle)
		assert.Equal(t, []string{"Go", "HTMX"}, idea.Languages)
		assert.Len(t, idea.Steps, 3)
		assert.Equal(t, []string{"SMS alerts"}, idea.ScaleUpIdeas)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseProjectIdea([]byte(`{"project_title":`))
		assert.ErrorIs(t, err, ErrInvalidProjectIdea)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := ParseProjectIdea([]byte(`{"project_title":"x","description":"y","languages":["Go"],"steps":["a"]}`))
		require.ErrorIs(t, err, ErrInvalidProjectIdea)
		assert.Contains(t, err.Error(), "scale_up_ideas")
	})

	t.Run("null field", func(t *testing.T) {
		_, err := ParseProjectIdea([]byte(`{"project_title":null,"description":"y","languages":["Go"],"steps":["a"],"scale_up_ideas":[]}`))
		require.ErrorIs(t, err, ErrInvalidProjectIdea)
		assert.Contains(t, err.Error(), "project_title")
	})

	t.Run("empty steps", func(t *testing.T) {
		_, err := ParseProjectIdea([]byte(`{"project_title":"x","description":"y","languages":["Go"],"steps":[],"scale_up_ideas":[]}`))
		require.ErrorIs(t, err, ErrInvalidProjectIdea)
		assert.Contains(t, err.Error(), "steps")
	})
}

func TestProjectIdea_TaskgenPrompt(t *testing.T) {
	idea, err := ParseProjectIdea([]byte(ideaJSON))
	require.NoError(t, err)

	got, err := idea.TaskgenPrompt()
	require.NoError(t, err)

	assert.Contains(t, got, "Project Title: Clinic Queue\n")
	assert.Contains(t, got, "Summary: Walk-in queue tracker for small clinics\n")
	assert.Contains(t, got, "Languages/Technologies: Go and HTMX\n")
	assert.Contains(t, got, "\n\tModel the queue\n\tBuild the API\n\tShip the UI\n")
}
