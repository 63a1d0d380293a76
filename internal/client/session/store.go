package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

// Store persists the session between runs. Clear on an empty store is a no-op.
type Store interface {
	// Restore returns nil when no session is stored.
	Restore(ctx context.Context) (*State, error)
	Save(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

const (
	Namespace          = "session"
	keyIsAuthenticated = "isAuthenticated"
	keyUsername        = "username"
)

// SQLiteStore keeps the session in the metadata table under Namespace.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db, Namespace)
}

func (s *SQLiteStore) Restore(ctx context.Context) (*State, error) {
	values, err := s.repo(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	flag, ok := values[keyIsAuthenticated]
	if !ok {
		return nil, nil
	}
	isAuth, err := strconv.ParseBool(string(flag))
	if err != nil || !isAuth {
		return nil, nil
	}

	username := string(values[keyUsername])
	if username == "" {
		return nil, nil
	}

	st := authenticated(username)
	return &st, nil
}

func (s *SQLiteStore) Save(ctx context.Context, username string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyIsAuthenticated, []byte(strconv.FormatBool(true))); err != nil {
			return err
		}
		return repo.Set(ctx, keyUsername, []byte(username))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, keyIsAuthenticated, keyUsername); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
