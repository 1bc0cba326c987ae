package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	ListBy(ctx context.Context, column string, value any, orderBy string, entity any) error
	DeleteBy(ctx context.Context, model any, column string, value any) (int64, error)
}
