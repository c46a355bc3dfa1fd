package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/faceforward/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/faceforward/internal/common"
	"github.com/dmitrijs2005/faceforward/internal/dbx"
)

// DB is what the store needs from the database handle. *sql.DB satisfies it.
type DB interface {
	dbx.DBTX
	dbx.TxBeginner
}

type Store struct {
	db      DB
	repo    metadata.Repository
	newRepo func(dbx.DBTX) metadata.Repository
}

func NewStore(db DB) *Store {
	newRepo := func(q dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(q) }
	return &Store{db: db, repo: newRepo(db), newRepo: newRepo}
}

// Token returns the stored session token, or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, common.MetadataKeyToken)
}

// Email returns the e-mail the current token was issued for.
func (s *Store) Email(ctx context.Context) (string, error) {
	return s.get(ctx, common.MetadataKeyEmail)
}

// Save replaces the session in one transaction.
func (s *Store) Save(ctx context.Context, email, token string) error {
	if token == "" {
		return common.ErrNoToken
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Set(ctx, common.MetadataKeyEmail, []byte(email)); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetadataKeyToken, []byte(token))
	})
}

// Clear removes the session. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Delete(ctx, common.MetadataKeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.MetadataKeyEmail)
	})
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return string(v), nil
}
