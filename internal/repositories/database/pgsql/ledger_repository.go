package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	"github.com/Shalini-Dasari/TrustMed/internal/models"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/mapping"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultLedgerPageSize = 20

type PgxLedgerRepository struct {
	BaseRepository
}

func NewLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// RecordEntry inserts the entry and adjusts the account balance in one
// transaction, so a crash between the two cannot leave them diverged.
func (r *PgxLedgerRepository) RecordEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelLedgerEntry(entry)
	insertQuery := `
        INSERT INTO ledger_entries (account_id, entry_type, amount, entry_date, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING entry_id;
    `
	err = tx.QueryRow(ctx, insertQuery,
		m.AccountID,
		m.Type,
		m.Amount,
		m.Date,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&m.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	balanceQuery := `
        UPDATE accounts
        SET balance = balance + $1, last_updated_at = $2
        WHERE account_id = $3;
    `
	cmdTag, err := tx.Exec(ctx, balanceQuery, entry.SignedAmount(), m.LastUpdatedAt, m.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust balance for account %d: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	persisted := mapping.ToDomainLedgerEntry(m)
	return &persisted, nil
}

func (r *PgxLedgerRepository) FindEntriesByAccount(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	conditions := []string{"account_id = $1"}
	args := []interface{}{accountID}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != nil {
		conditions = append(conditions, "entry_type = "+arg(string(*filter.Type)))
	}
	if filter.From != nil {
		conditions = append(conditions, "entry_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "entry_date <= "+arg(*filter.To))
	}
	if filter.NextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursor(filter.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions = append(conditions, "(entry_date, entry_id) < ("+arg(cursorDate)+", "+arg(cursorID)+")")
	}

	// Fetch one extra row to decide whether another page exists.
	query := `
        SELECT entry_id, account_id, entry_type, amount, entry_date, description, created_at, last_updated_at
        FROM ledger_entries
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY entry_date DESC, entry_id DESC
        LIMIT ` + arg(limit+1) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.AccountID,
			&m.Type,
			&m.Amount,
			&m.Date,
			&m.Description,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}

	nextToken := ""
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		nextToken = pagination.EncodeCursor(last.Date, last.EntryID)
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nextToken, nil
}
