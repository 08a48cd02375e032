// Package users implements registration and authentication over a credential
// store. Business outcomes (conflict, bad credentials) are ordinary sentinel
// values from internal/common; only infrastructure faults are surfaced as
// common.ErrorUnavailable.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dbellanger/lexico/internal/common"
	"github.com/dbellanger/lexico/internal/server/auth"
	"github.com/dbellanger/lexico/internal/server/password"
)

type Service struct {
	repo         Repository
	hasher       *password.Hasher
	tokens       *auth.TokenManager
	storeTimeout time.Duration
}

func NewService(repo Repository, hasher *password.Hasher, tokens *auth.TokenManager, storeTimeout time.Duration) *Service {
	return &Service{
		repo:         repo,
		hasher:       hasher,
		tokens:       tokens,
		storeTimeout: storeTimeout,
	}
}

// Register creates a credential record for username. It returns
// common.ErrorConflict when the username is already taken, whether that is
// detected by the pre-check or by the store's uniqueness constraint under a
// concurrent registration.
func (s *Service) Register(ctx context.Context, username, plaintext string) (*User, error) {

	if username == "" || plaintext == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.getByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, common.ErrorInternal
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: digest})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorUnavailable
	}

	return user, nil
}

// Authenticate verifies the credentials and, on success, returns a Session
// carrying a freshly issued token. Unknown usernames and wrong passwords both
// map to common.ErrorUnauthorized so callers cannot tell them apart.
func (s *Service) Authenticate(ctx context.Context, username, plaintext string) (*Session, error) {

	user, err := s.getByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(auth.Principal{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{User: user, Token: token}, nil
}

// GetByID resolves a principal's user id back to the stored record.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}

	return user, nil
}

func (s *Service) getByUsername(ctx context.Context, username string) (*User, error) {

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}

	return user, nil
}
