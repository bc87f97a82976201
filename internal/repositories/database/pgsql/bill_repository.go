package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	"github.com/Shalini-Dasari/TrustMed/internal/models"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

func NewBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.BillRecord) (int64, error) {
	m := mapping.ToModelBillRecord(bill)
	query := `
        INSERT INTO bill_records (account_id, document_ref, bill_date, amount, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING bill_id;
    `
	var billID int64
	err := r.Pool.QueryRow(ctx, query,
		m.AccountID,
		m.DocumentRef,
		m.Date,
		m.Amount,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&billID)
	if err != nil {
		return 0, fmt.Errorf("failed to save bill record: %w", err)
	}
	return billID, nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.BillRecord, error) {
	query := `
        SELECT bill_id, account_id, document_ref, bill_date, amount, status, created_at, last_updated_at
        FROM bill_records
        WHERE bill_id = $1;
    `
	var m models.BillRecord
	err := r.Pool.QueryRow(ctx, query, billID).Scan(
		&m.BillID,
		&m.AccountID,
		&m.DocumentRef,
		&m.Date,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %d: %w", billID, err)
	}
	bill := mapping.ToDomainBillRecord(m)
	return &bill, nil
}

func (r *PgxBillRepository) FindBillsByAccount(ctx context.Context, accountID int64, status *domain.BillStatus, limit, offset int) ([]domain.BillRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT bill_id, account_id, document_ref, bill_date, amount, status, created_at, last_updated_at
        FROM bill_records
        WHERE account_id = $1 AND ($2::text IS NULL OR status = $2)
        ORDER BY bill_date DESC, bill_id DESC
        LIMIT $3 OFFSET $4;
    `
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, accountID, statusArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill records: %w", err)
	}
	defer rows.Close()

	modelBills := []models.BillRecord{}
	for rows.Next() {
		var m models.BillRecord
		err := rows.Scan(
			&m.BillID,
			&m.AccountID,
			&m.DocumentRef,
			&m.Date,
			&m.Amount,
			&m.Status,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill record row: %w", err)
		}
		modelBills = append(modelBills, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill record rows: %w", rows.Err())
	}

	return mapping.ToDomainBillRecordSlice(modelBills), nil
}

func (r *PgxBillRepository) UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) error {
	query := `
        UPDATE bill_records
        SET status = $1, last_updated_at = $2
        WHERE bill_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), time.Now(), billID)
	if err != nil {
		return fmt.Errorf("failed to update bill status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
