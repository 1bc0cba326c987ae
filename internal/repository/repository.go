package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskpad/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrTaskNotFound error = errors.New("task not found")

type TaskListRepository struct {
	db Storage
}

func NewTaskListRepository(db Storage) *TaskListRepository {
	return &TaskListRepository{
		db: db,
	}
}

func (r *TaskListRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Task{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TaskListRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *TaskListRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TaskListRepository) CreateTask(ctx context.Context, userID uint, content string) (Task, error) {
	task := Task{
		Content: content,
		Created: time.Now().UTC(),
		UserID:  userID,
	}

	err := r.db.Insert(ctx, &task)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (r *TaskListRepository) ListTasks(ctx context.Context, userID uint) ([]Task, error) {
	tasks := []Task{}

	err := r.db.ListBy(ctx, "user_id", userID, "created ASC", &tasks)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask resolves a task by id for the given owner. A task owned by another
// user is reported as not found so ids cannot be probed across accounts.
func (r *TaskListRepository) GetTask(ctx context.Context, userID, taskID uint) (Task, error) {
	var task Task

	err := r.db.GetOneBy(ctx, "id", taskID, &task)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("get task by id: %w", err)
	}

	if task.UserID != userID {
		return Task{}, ErrTaskNotFound
	}

	return task, nil
}

func (r *TaskListRepository) UpdateTaskContent(ctx context.Context, userID, taskID uint, content string) (Task, error) {
	task, err := r.GetTask(ctx, userID, taskID)
	if err != nil {
		return Task{}, err
	}

	task.Content = content
	if err := r.db.Save(ctx, &task); err != nil {
		return Task{}, fmt.Errorf("update task content: %w", err)
	}

	return task, nil
}

func (r *TaskListRepository) DeleteTask(ctx context.Context, userID, taskID uint) error {
	if _, err := r.GetTask(ctx, userID, taskID); err != nil {
		return err
	}

	rows, err := r.db.DeleteBy(ctx, &Task{}, "id", taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
