package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrOwnerRequired     = errors.New("owner identity required")
)
