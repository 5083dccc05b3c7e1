package prompts

import (
	"fmt"
	"strings"
)

const brainstormInstruction = "Generate a project idea. Include which languages/technologies are used, " +
	"clear steps for achieving project completion, and ideas for scaling it up."

// BuildBrainstormPrompt describes the user from their roles, technologies and
// industry and asks for a project idea.
//
// Roles are lower-cased, technologies keep their casing. Only the first
// industry is used; any others are ignored.
func BuildBrainstormPrompt(roles, technologies, industries []string) (string, error) {
	lowered := make([]string, len(roles))
	for i, role := range roles {
		lowered[i] = strings.ToLower(role)
	}

	who, err := JoinNaturally(lowered)
	if err != nil {
		return "", fmt.Errorf("roles: %w", err)
	}
	using, err := JoinNaturally(technologies)
	if err != nil {
		return "", fmt.Errorf("technologies: %w", err)
	}
	if len(industries) == 0 {
		return "", fmt.Errorf("industries: empty list: %w", ErrInvalidArgument)
	}
	industry := strings.ToLower(industries[0])

	return fmt.Sprintf("I am a %s using %s in the %s industry. %s", who, using, industry, brainstormInstruction), nil
}
