package handler

import (
	"context"
	"net/http"

	"taskpad/internal/core"
	"taskpad/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TaskService . TaskService
type TaskService interface {
	Register(ctx context.Context, creds core.Credentials) (core.Identity, error)
	Login(ctx context.Context, creds core.Credentials) (core.Identity, error)
	Tasks(ctx context.Context, userID uint) ([]core.TaskRecord, error)
	AddTask(ctx context.Context, userID uint, content string) (core.TaskRecord, error)
	GetTask(ctx context.Context, userID, taskID uint) (core.TaskRecord, error)
	EditTask(ctx context.Context, userID, taskID uint, content string) (core.TaskRecord, error)
	RemoveTask(ctx context.Context, userID, taskID uint) error
}

//counterfeiter:generate -o fake -fake-name Sessions . Sessions
type Sessions interface {
	Authenticate(r *http.Request) (core.Identity, error)
	Issue(w http.ResponseWriter, identity core.Identity) error
	Clear(w http.ResponseWriter)
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	Render(w http.ResponseWriter, name string, data map[string]any) error
}

//counterfeiter:generate -o fake -fake-name FormDecoder . FormDecoder
type FormDecoder interface {
	DecodeCredentials(r *http.Request) (payload.CredentialsForm, error)
	DecodeTask(r *http.Request) (payload.TaskForm, error)
}
