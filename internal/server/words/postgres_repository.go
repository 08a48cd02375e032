package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbellanger/lexico/internal/common"
	"github.com/dbellanger/lexico/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*Word, error) {
	query :=
		`SELECT id, source_text, source_language, target_text, target_language, created_at
		 FROM words
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Word{}
	for rows.Next() {
		word := &Word{}
		err := rows.Scan(&word.ID, &word.SourceText, &word.SourceLanguage,
			&word.TargetText, &word.TargetLanguage, &word.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Word, error) {
	query :=
		`SELECT id, source_text, source_language, target_text, target_language, created_at
		 FROM words
		 WHERE id = $1
		 `

	word := &Word{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&word.ID, &word.SourceText,
		&word.SourceLanguage, &word.TargetText, &word.TargetLanguage, &word.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return word, nil
}

func (r *PostgresRepository) Create(ctx context.Context, word *Word) (*Word, error) {
	query :=
		`INSERT INTO words (source_text, source_language, target_text, target_language)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, word.SourceText, word.SourceLanguage,
		word.TargetText, word.TargetLanguage).Scan(&word.ID, &word.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return word, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, word *Word) error {
	query :=
		`UPDATE words
		 SET source_text = $2, source_language = $3, target_text = $4, target_language = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, word.SourceText, word.SourceLanguage,
		word.TargetText, word.TargetLanguage)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM words
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
