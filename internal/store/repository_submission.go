package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/models"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var submissionColumns = []string{
	"id", "deploy_hash", "chain_name", "node_address", "kind", "amount", "target", "status", "submitted_at",
}

// submissionRepository is the SQLite-backed implementation of
// [SubmissionRepository] over the "deploys" table.
//
// Methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type submissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by
// the provided database connection and logger.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission inserts one history row. A UNIQUE violation on the
// deploy hash maps to [ErrDuplicateSubmission].
func (r *submissionRepository) SaveSubmission(ctx context.Context, sub models.DeploySubmission) (models.DeploySubmission, error) {
	log := logger.FromContext(ctx)

	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	if sub.Status == "" {
		sub.Status = models.SubmissionPending
	}

	query, args, err := builder.
		Insert("deploys").
		Columns("deploy_hash", "chain_name", "node_address", "kind", "amount", "target", "status", "submitted_at").
		Values(sub.DeployHash, sub.ChainName, sub.NodeAddress, sub.Kind, sub.Amount, sub.Target, sub.Status, sub.SubmittedAt).
		ToSql()
	if err != nil {
		return models.DeploySubmission{}, fmt.Errorf("build insert query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.SaveSubmission").Msg("error: insert failed")

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.DeploySubmission{}, ErrDuplicateSubmission
		}
		return models.DeploySubmission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.DeploySubmission{}, fmt.Errorf("read inserted id: %w", err)
	}
	sub.ID = id

	return sub, nil
}

// GetByDeployHash returns one history row or [ErrSubmissionNotFound].
func (r *submissionRepository) GetByDeployHash(ctx context.Context, deployHash string) (models.DeploySubmission, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select(submissionColumns...).
		From("deploys").
		Where(sq.Eq{"deploy_hash": deployHash}).
		ToSql()
	if err != nil {
		return models.DeploySubmission{}, fmt.Errorf("build select query: %w", err)
	}

	var sub models.DeploySubmission
	row := r.db.QueryRowContext(ctx, query, args...)
	err = scanSubmission(row.Scan, &sub)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeploySubmission{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.GetByDeployHash").Msg("error: scanning error")
		return models.DeploySubmission{}, err
	}

	return sub, nil
}

// ListSubmissions returns matching history rows, newest first.
func (r *submissionRepository) ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.DeploySubmission, error) {
	log := logger.FromContext(ctx)

	q := builder.
		Select(submissionColumns...).
		From("deploys").
		OrderBy("submitted_at DESC", "id DESC")

	if filter.ChainName != "" {
		q = q.Where(sq.Eq{"chain_name": filter.ChainName})
	}
	if filter.Kind != "" {
		q = q.Where(sq.Eq{"kind": filter.Kind})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.ListSubmissions").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var subs []models.DeploySubmission
	for rows.Next() {
		var sub models.DeploySubmission
		if err = scanSubmission(rows.Scan, &sub); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// UpdateStatus resolves a pending row once execution results are known.
func (r *submissionRepository) UpdateStatus(ctx context.Context, deployHash, status string) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Update("deploys").
		Set("status", status).
		Where(sq.Eq{"deploy_hash": deployHash}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.UpdateStatus").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func scanSubmission(scan func(dest ...any) error, sub *models.DeploySubmission) error {
	return scan(
		&sub.ID,
		&sub.DeployHash,
		&sub.ChainName,
		&sub.NodeAddress,
		&sub.Kind,
		&sub.Amount,
		&sub.Target,
		&sub.Status,
		&sub.SubmittedAt,
	)
}
