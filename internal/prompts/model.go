package prompts

import (
	"encoding/json"
	"fmt"
)

// ProjectIdea is the structured reply expected from the generation service
// for a brainstorm prompt.
type ProjectIdea struct {
	ProjectTitle string   `json:"project_title"`
	Description  string   `json:"description"`
	Languages    []string `json:"languages"`
	Steps        []string `json:"steps"`
	ScaleUpIdeas []string `json:"scale_up_ideas"`
}

// rawProjectIdea uses pointers so absent fields can be told apart from empty ones.
type rawProjectIdea struct {
	ProjectTitle *string   `json:"project_title"`
	Description  *string   `json:"description"`
	Languages    *[]string `json:"languages"`
	Steps        *[]string `json:"steps"`
	ScaleUpIdeas *[]string `json:"scale_up_ideas"`
}

// ParseProjectIdea decodes a generation reply and validates it.
func ParseProjectIdea(data []byte) (*ProjectIdea, error) {
	var raw rawProjectIdea
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode project idea: %v: %w", err, ErrInvalidProjectIdea)
	}

	missing := func(field string) error {
		return fmt.Errorf("%s is required: %w", field, ErrInvalidProjectIdea)
	}
	switch {
	case raw.ProjectTitle == nil:
		return nil, missing("project_title")
	case raw.Description == nil:
		return nil, missing("description")
	case raw.Languages == nil:
		return nil, missing("languages")
	case raw.Steps == nil:
		return nil, missing("steps")
	case raw.ScaleUpIdeas == nil:
		return nil, missing("scale_up_ideas")
	}

	idea := &ProjectIdea{
		ProjectTitle: *raw.ProjectTitle,
		Description:  *raw.Description,
		Languages:    *raw.Languages,
		Steps:        *raw.Steps,
		ScaleUpIdeas: *raw.ScaleUpIdeas,
	}
	if err := idea.Validate(); err != nil {
		return nil, err
	}
	return idea, nil
}

// Validate checks that the idea can drive a task-generation prompt.
func (p *ProjectIdea) Validate() error {
	if len(p.Languages) == 0 {
		return fmt.Errorf("languages must not be empty: %w", ErrInvalidProjectIdea)
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("steps must not be empty: %w", ErrInvalidProjectIdea)
	}
	return nil
}

// TaskgenPrompt builds the task-generation prompt for this idea, using the
// description as the summary.
func (p *ProjectIdea) TaskgenPrompt() (string, error) {
	return BuildTaskgenPrompt(p.ProjectTitle, p.Description, p.Languages, p.Steps)
}
