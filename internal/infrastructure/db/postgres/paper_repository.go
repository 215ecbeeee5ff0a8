package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

const paperColumns = `id, title, description, category, file_path, user_id`

type PaperRepository struct {
	db DBTX
}

func NewPaperRepository(db DBTX) *PaperRepository {
	return &PaperRepository{db: db}
}

func (r *PaperRepository) Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	query :=
		`INSERT INTO papers (title, description, category, file_path, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	created := *paper
	err := r.db.QueryRowContext(ctx, query,
		paper.Title, paper.Description, string(paper.Category), paper.FilePath, paper.UserID).Scan(&created.ID)
	if err != nil {
		return nil, paperWriteError(err)
	}
	return &created, nil
}

func (r *PaperRepository) FindByID(ctx context.Context, id int64) (*domain.Paper, error) {
	query := `SELECT ` + paperColumns + ` FROM papers WHERE id = $1`

	p, err := scanPaper(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaperNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// List builds the WHERE clause from the set filter fields. The search term is
// matched literally: LIKE wildcards in it are escaped.
func (r *PaperRepository) List(ctx context.Context, filter ports.PaperFilter) ([]*domain.Paper, error) {
	var (
		where []string
		args  []any
	)
	if filter.OwnerID != 0 {
		args = append(args, filter.OwnerID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where = append(where, fmt.Sprintf(`title ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT ` + paperColumns + ` FROM papers`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var papers []*domain.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return papers, nil
}

func (r *PaperRepository) Update(ctx context.Context, paper *domain.Paper) error {
	query :=
		`UPDATE papers
		 SET title = $1, description = $2, category = $3
		 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, paper.Title, paper.Description, string(paper.Category), paper.ID)
	if err != nil {
		return paperWriteError(err)
	}
	return expectOne(res, domain.ErrPaperNotFound)
}

func (r *PaperRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM papers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res, domain.ErrPaperNotFound)
}

func scanPaper(row rowScanner) (*domain.Paper, error) {
	p := &domain.Paper{}
	var category string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &category, &p.FilePath, &p.UserID); err != nil {
		return nil, err
	}
	p.Category = domain.Category(category)
	return p, nil
}

func paperWriteError(err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation:
		return domain.ErrUserNotFound
	case codeCheckViolation:
		return domain.ErrInvalidCategory
	case codeStringTooLong:
		return fmt.Errorf("%w: field too long", domain.ErrValidation)
	}
	return fmt.Errorf("db error: %w", err)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
