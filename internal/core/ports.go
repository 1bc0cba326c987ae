package core

import (
	"context"
	"taskpad/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateTask(ctx context.Context, userID uint, content string) (repository.Task, error)
	ListTasks(ctx context.Context, userID uint) ([]repository.Task, error)
	GetTask(ctx context.Context, userID, taskID uint) (repository.Task, error)
	UpdateTaskContent(ctx context.Context, userID, taskID uint, content string) (repository.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}
