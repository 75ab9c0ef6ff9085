package download

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/repository"
	"github.com/randogapp/randog/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("DownloadRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, d domain.Download) error {
	query, args, err := repository.SqBuilder.
		Insert("downloads").
		Columns("url", "category", "file_path", "created_at").
		Values(d.URL, d.Category, d.FilePath, time.Now()).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		p.logger.Error("Failed to insert download row", "url", d.URL, "error", err)
		return fmt.Errorf("%w: %v", ErrCannotCreate, err)
	}
	return nil
}

func (p *Pgx) ListRecent(ctx context.Context, limit int) ([]*domain.Download, error) {
	query, args, err := repository.SqBuilder.
		Select("id", "url", "category", "file_path", "created_at").
		From("downloads").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query downloads: %w", err)
	}
	defer rows.Close()

	var list []*domain.Download
	for rows.Next() {
		var d domain.Download
		if err := rows.Scan(&d.ID, &d.URL, &d.Category, &d.FilePath, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan download row: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating download rows: %w", err)
	}

	return list, nil
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := repository.SqBuilder.
		Delete("downloads").
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repository.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up downloads: %w", err)
	}
	return tag.RowsAffected(), nil
}
