package usecase

import (
	"taskbuster/internal/document"
	"taskbuster/internal/task"
	"taskbuster/pkg/hfinference"
	pkgLog "taskbuster/pkg/log"
	"taskbuster/pkg/mailer"
)

type implUseCase struct {
	l         pkgLog.Logger
	resolver  task.Resolver
	loader    document.ILoader
	inference hfinference.IInference
	mail      mailer.IMailer
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	resolver task.Resolver,
	loader document.ILoader,
	inference hfinference.IInference,
	mail mailer.IMailer,
) *implUseCase {
	return &implUseCase{
		l:         l,
		resolver:  resolver,
		loader:    loader,
		inference: inference,
		mail:      mail,
	}
}
