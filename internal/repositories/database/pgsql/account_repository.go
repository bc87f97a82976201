package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	"github.com/Shalini-Dasari/TrustMed/internal/models"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements the facade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, email, password, full_name, credit_score,
	card_number, card_expiry, card_cvv, card_status,
	balance, documents, created_at, last_updated_at,
	refresh_token_hash, refresh_token_expiry_time
`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Email,
		&m.Password,
		&m.FullName,
		&m.CreditScore,
		&m.CardNumber,
		&m.CardExpiry,
		&m.CardCVV,
		&m.CardStatus,
		&m.Balance,
		&m.Documents,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
        INSERT INTO accounts (
            email, password, full_name, credit_score,
            card_number, card_expiry, card_cvv, card_status,
            balance, documents, created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING account_id;
    `
	var accountID int64
	err := r.Pool.QueryRow(ctx, query,
		m.Email,
		m.Password,
		m.FullName,
		m.CreditScore,
		m.CardNumber,
		m.CardExpiry,
		m.CardCVV,
		m.CardStatus,
		m.Balance,
		m.Documents,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&accountID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to save account: %w", err)
	}
	return accountID, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// UpdateAccount applies a typed partial update. Document appends use a
// single array-concatenation UPDATE so two concurrent appends can never
// overwrite each other's entries.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, accountID int64, patch domain.AccountPatch) error {
	if patch.Empty() {
		return nil
	}

	sets := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Card != nil {
		sets = append(sets,
			"card_number = "+arg(patch.Card.Number),
			"card_expiry = "+arg(patch.Card.Expiry),
			"card_cvv = "+arg(patch.Card.CVV),
			"card_status = "+arg(string(patch.Card.Status)),
		)
	}
	if patch.CardStatus != nil {
		sets = append(sets, "card_status = "+arg(string(*patch.CardStatus)))
	}
	if patch.Balance != nil {
		sets = append(sets, "balance = "+arg(*patch.Balance))
	}
	if len(patch.AppendDocuments) > 0 {
		sets = append(sets, "documents = documents || "+arg(patch.AppendDocuments)+"::text[]")
	}
	sets = append(sets, "last_updated_at = "+arg(time.Now()))

	query := "UPDATE accounts SET " + strings.Join(sets, ", ") + " WHERE account_id = " + arg(accountID) + ";"
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
        UPDATE accounts
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3
        WHERE account_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) ClearRefreshToken(ctx context.Context, accountID int64) error {
	query := `
        UPDATE accounts
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, last_updated_at = $1
        WHERE account_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
