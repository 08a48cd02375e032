package words

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dbellanger/lexico/internal/common"
)

type fakeRepo struct {
	words map[string]*Word

	failAll bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{words: map[string]*Word{}}
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*Word, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	result := []*Word{}
	for _, w := range f.words {
		result = append(result, w)
	}
	return result, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Word, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	w, ok := f.words[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return w, nil
}

func (f *fakeRepo) Create(ctx context.Context, word *Word) (*Word, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	word.ID = "w-1"
	f.words[word.ID] = word
	return word, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, word *Word) error {
	if f.failAll {
		return errors.New("db down")
	}
	if _, ok := f.words[id]; !ok {
		return common.ErrorNotFound
	}
	word.ID = id
	f.words[id] = word
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if f.failAll {
		return errors.New("db down")
	}
	if _, ok := f.words[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.words, id)
	return nil
}

func sampleWord() *Word {
	return &Word{
		SourceText:     "chien",
		SourceLanguage: "fr",
		TargetText:     "dog",
		TargetLanguage: "en",
	}
}

func TestCreate_RequiresAllFields(t *testing.T) {
	s := NewService(newFakeRepo(), time.Second)
	ctx := context.Background()

	blanks := []func(*Word){
		func(w *Word) { w.SourceText = "" },
		func(w *Word) { w.SourceLanguage = "  " },
		func(w *Word) { w.TargetText = "" },
		func(w *Word) { w.TargetLanguage = "" },
	}
	for i, blank := range blanks {
		w := sampleWord()
		blank(w)
		if _, err := s.Create(ctx, w); !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("case %d: want common.ErrorValidation, got %v", i, err)
		}
	}
}

func TestCreate_AndGetBack(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, time.Second)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleWord())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.SourceText != "chien" || got.TargetText != "dog" {
		t.Fatalf("unexpected word: %+v", got)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewService(newFakeRepo(), time.Second)

	err := s.Update(context.Background(), "missing", sampleWord())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_ReplacesFields(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, time.Second)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleWord())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	replacement := sampleWord()
	replacement.TargetText = "hound"
	if err := s.Update(ctx, created.ID, replacement); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.TargetText != "hound" {
		t.Fatalf("update did not take effect: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, time.Second)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleWord())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.GetByID(ctx, created.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, created.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound on second delete, got %v", err)
	}
}

func TestStoreFaultsMapToUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.failAll = true
	s := NewService(repo, time.Second)
	ctx := context.Background()

	if _, err := s.GetAll(ctx); !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("GetAll: want common.ErrorUnavailable, got %v", err)
	}
	if _, err := s.GetByID(ctx, "x"); !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("GetByID: want common.ErrorUnavailable, got %v", err)
	}
	if _, err := s.Create(ctx, sampleWord()); !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("Create: want common.ErrorUnavailable, got %v", err)
	}
	if err := s.Update(ctx, "x", sampleWord()); !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("Update: want common.ErrorUnavailable, got %v", err)
	}
	if err := s.Delete(ctx, "x"); !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("Delete: want common.ErrorUnavailable, got %v", err)
	}
}
