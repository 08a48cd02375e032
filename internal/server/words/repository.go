package words

import (
	"context"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*Word, error)
	GetByID(ctx context.Context, id string) (*Word, error)
	Create(ctx context.Context, word *Word) (*Word, error)
	Update(ctx context.Context, id string, word *Word) error
	Delete(ctx context.Context, id string) error
}
