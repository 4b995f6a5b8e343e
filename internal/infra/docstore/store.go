package docstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// psql squirrel с плейсхолдерами PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Store непрозрачное хранилище ключ → документ поверх PostgreSQL.
// Каждая коллекция верхнего уровня сохраняется целиком как один JSON
// документ: никакой схемы предметной области на стороне базы нет.
type Store struct {
	db *sql.DB
}

// New создает новый экземпляр хранилища документов
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Bootstrap создает таблицу документов, если её ещё нет
func (s *Store) Bootstrap(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS documents (
			name       TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: Bootstrap - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get читает документ коллекции. ErrDocumentNotFound, если коллекция
// ещё не сохранялась.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := psql.Select("body").
		From("documents").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var body []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan body: %v", ErrExecQuery, err)
	}

	return body, nil
}

// Put заменяет документ коллекции целиком (upsert)
func (s *Store) Put(ctx context.Context, name string, body []byte) error {
	query, args, err := psql.Insert("documents").
		Columns("name", "body").
		Values(name, body).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
