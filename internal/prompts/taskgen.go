package prompts

import (
	"fmt"
	"strings"
)

const taskgenPreamble = "I will provide you with a project title, a brief summary, my languages/technologies " +
	"preferences, and a list of steps necessary for project completion. You must provide a list of " +
	"tasks needed for each step. "

// BuildTaskgenPrompt asks for a list of tasks per step of a project.
// Steps are written one per line in the order given; an empty steps list
// leaves the Steps section empty.
func BuildTaskgenPrompt(title, summary string, languages, steps []string) (string, error) {
	langs, err := JoinNaturally(languages)
	if err != nil {
		return "", fmt.Errorf("languages: %w", err)
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(taskgenPreamble)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Project Title: %s\n", title)
	fmt.Fprintf(&b, "  Summary: %s\n", summary)
	fmt.Fprintf(&b, "  Languages/Technologies: %s\n", langs)
	b.WriteString("  Steps: ")
	for _, step := range steps {
		b.WriteString("\n\t")
		b.WriteString(step)
	}
	b.WriteString("\n")
	return b.String(), nil
}
