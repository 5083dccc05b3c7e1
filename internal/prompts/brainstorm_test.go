package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBrainstormPrompt(t *testing.T) {
	t.Run("lower-cases roles and first industry only", func(t *testing.T) {
		got, err := BuildBrainstormPrompt([]string{"Engineer"}, []string{"Python"}, []string{"Tech", "Other"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, "I am a engineer using Python in the tech industry."), got)
		assert.NotContains(t, got, "other")
		assert.NotContains(t, got, "Other")
	})

	t.Run("full sentence", func(t *testing.T) {
		got, err := BuildBrainstormPrompt(
			[]string{"Developer", "Data Scientist"},
			[]string{"Go", "PostgreSQL", "React"},
			[]string{"Healthcare"},
		)
		require.NoError(t, err)

		want := "I am a developer and data scientist using Go, PostgreSQL, and React in the healthcare industry. " +
			"Generate a project idea. Include which languages/technologies are used, clear steps for achieving " +
			"project completion, and ideas for scaling it up."
		assert.Equal(t, want, got)
	})

	t.Run("does not mutate roles", func(t *testing.T) {
		roles := []string{"Engineer"}
		_, err := BuildBrainstormPrompt(roles, []string{"Go"}, []string{"Tech"})
		require.NoError(t, err)
		assert.Equal(t, "Engineer", roles[0])
	})
}

func TestBuildBrainstormPrompt_EmptyLists(t *testing.T) {
	tests := []struct {
		name         string
		roles        []string
		technologies []string
		industries   []string
		field        string
	}{
		{"no roles", nil, []string{"Go"}, []string{"Tech"}, "roles"},
		{"no technologies", []string{"Engineer"}, []string{}, []string{"Tech"}, "technologies"},
		{"no industries", []string{"Engineer"}, []string{"Go"}, nil, "industries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildBrainstormPrompt(tt.roles, tt.technologies, tt.industries)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
