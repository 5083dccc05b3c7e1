package prompts

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidProjectIdea = errors.New("invalid project idea")
)
