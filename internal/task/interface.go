package task

import (
	"context"

	"taskbuster/internal/intent"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Process resolves the task description to an intent and executes the
	// matching handler against the optional uploaded document.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

// Resolver turns a task description into exactly one resolution.
type Resolver interface {
	Resolve(ctx context.Context, description string) intent.Resolution
}
