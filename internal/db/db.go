package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type SqliteDB struct {
	db *gorm.DB
}

// NewSqliteDB opens (creating if absent) the database file at path.
func NewSqliteDB(path string) (*SqliteDB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &SqliteDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SqliteDB{
		db: db,
	}, nil
}

func (f *SqliteDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *SqliteDB) Insert(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (f *SqliteDB) Save(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save to table: %w", err)
	}
	return nil
}

func (f *SqliteDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *SqliteDB) ListBy(ctx context.Context, column string, value any, orderBy string, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Where(query, value).Order(orderBy).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("listing records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *SqliteDB) DeleteBy(ctx context.Context, model any, column string, value any) (int64, error) {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting record by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
