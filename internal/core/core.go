package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskpad/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUserTaken error = errors.New("username already registered")
var ErrTaskNotFound error = errors.New("task not found")
var ErrEmptyContent error = errors.New("task content is empty")

// TaskList is the application service behind every route: credential checks
// on register/login and per-user task CRUD.
type TaskList struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewTaskList is a constructor function for the TaskList type.
func NewTaskList(logger *zap.SugaredLogger, repo Repository) *TaskList {
	return &TaskList{
		logs: logger,
		repo: repo,
	}
}

// Register creates a new user with a bcrypt-hashed password. The plaintext
// password is never persisted.
func (t *TaskList) Register(ctx context.Context, creds Credentials) (Identity, error) {
	_, err := t.repo.GetUserByUsername(ctx, creds.Username)
	if err == nil {
		return Identity{}, ErrUserTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return Identity{}, fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := t.repo.CreateUser(ctx, creds.Username, string(hash))
	if err != nil {
		// unique index backstops the pre-check above under concurrent registration
		if errors.Is(err, repository.ErrUserExists) {
			return Identity{}, ErrUserTaken
		}
		return Identity{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user registered", "username", user.Username)

	return Identity{UserID: user.ID, Username: user.Username}, nil
}

// Login checks the provided credentials against the stored hash. The two
// failure modes are distinct errors for logging, but callers must render
// them identically to avoid username enumeration.
func (t *TaskList) Login(ctx context.Context, creds Credentials) (Identity, error) {
	user, err := t.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Identity{}, ErrUserNotFound
		}
		return Identity{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Identity{}, ErrIncorrectPassword
	}

	return Identity{UserID: user.ID, Username: user.Username}, nil
}

// Tasks returns the user's tasks ordered ascending by creation time.
func (t *TaskList) Tasks(ctx context.Context, userID uint) ([]TaskRecord, error) {
	tasks, err := t.repo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return t.repoTasksToRecords(tasks), nil
}

// AddTask creates a task from the trimmed content. Whitespace-only content
// is rejected with ErrEmptyContent.
func (t *TaskList) AddTask(ctx context.Context, userID uint, content string) (TaskRecord, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return TaskRecord{}, ErrEmptyContent
	}

	task, err := t.repo.CreateTask(ctx, userID, content)
	if err != nil {
		return TaskRecord{}, fmt.Errorf("create task: %w", err)
	}

	t.logs.Infow("task created", "task_id", task.ID, "user_id", userID)

	return t.repoTaskToRecord(task), nil
}

func (t *TaskList) GetTask(ctx context.Context, userID, taskID uint) (TaskRecord, error) {
	task, err := t.repo.GetTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("get task: %w", err)
	}

	return t.repoTaskToRecord(task), nil
}

// EditTask replaces the task's content in place, keeping the non-empty
// content invariant that AddTask enforces.
func (t *TaskList) EditTask(ctx context.Context, userID, taskID uint, content string) (TaskRecord, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return TaskRecord{}, ErrEmptyContent
	}

	task, err := t.repo.UpdateTaskContent(ctx, userID, taskID, content)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("update task content: %w", err)
	}

	t.logs.Infow("task updated", "task_id", taskID, "user_id", userID)

	return t.repoTaskToRecord(task), nil
}

func (t *TaskList) RemoveTask(ctx context.Context, userID, taskID uint) error {
	err := t.repo.DeleteTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	t.logs.Infow("task deleted", "task_id", taskID, "user_id", userID)

	return nil
}

func (t *TaskList) repoTaskToRecord(task repository.Task) TaskRecord {
	return TaskRecord{
		ID:        task.ID,
		Content:   task.Content,
		Completed: task.Completed,
		Created:   task.Created,
	}
}

func (t *TaskList) repoTasksToRecords(tasks []repository.Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = t.repoTaskToRecord(task)
	}
	return records
}
