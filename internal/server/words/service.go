// Package words implements CRUD over dictionary entries. The only business
// rule, carried over from the original application, is that all four text
// fields of a word are required.
package words

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dbellanger/lexico/internal/common"
)

type Service struct {
	repo         Repository
	storeTimeout time.Duration
}

func NewService(repo Repository, storeTimeout time.Duration) *Service {
	return &Service{repo: repo, storeTimeout: storeTimeout}
}

func validate(word *Word) error {
	if strings.TrimSpace(word.SourceText) == "" ||
		strings.TrimSpace(word.SourceLanguage) == "" ||
		strings.TrimSpace(word.TargetText) == "" ||
		strings.TrimSpace(word.TargetLanguage) == "" {
		return common.ErrorValidation
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Word, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Word, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	word, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return word, nil
}

func (s *Service) Create(ctx context.Context, word *Word) (*Word, error) {
	if err := validate(word); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	created, err := s.repo.Create(ctx, word)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return created, nil
}

// Update replaces the stored word with the given id.
func (s *Service) Update(ctx context.Context, id string, word *Word) error {
	if err := validate(word); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err := s.repo.Update(ctx, id, word)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorUnavailable
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorUnavailable
	}
	return nil
}
