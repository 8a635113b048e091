package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/pkg/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Credential is a stored email/password-hash pair.
type Credential struct {
	UpdatedAt    time.Time `db:"updated_at"`
	CreatedAt    time.Time `db:"created_at"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
}

type Repository interface {
	GetCredential(ctx context.Context, email string) (*Credential, error)
	CreateCredential(ctx context.Context, email, passwordHash string) error
	SeedProfile(ctx context.Context, email string) error
}

type Repo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	logger logger.Logger
}

func NewRepository(db *sql.DB, getter *trmsql.CtxGetter, logger logger.Logger) (*Repo, error) {
	if db == nil {
		return nil, errors.New("nil dependency: database")
	}
	if getter == nil {
		return nil, errors.New("nil dependency: transaction getter")
	}

	return &Repo{db: db, getter: getter, logger: logger}, nil
}

var _ Repository = (*Repo)(nil)

func (r *Repo) GetCredential(ctx context.Context, email string) (*Credential, error) {
	const query = `
		SELECT email, password_hash, created_at, updated_at
		FROM credentials WHERE email = $1`

	c := new(Credential)

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&c.Email,
		&c.PasswordHash,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *Repo) CreateCredential(ctx context.Context, email, passwordHash string) error {
	const query = "INSERT INTO credentials (email, password_hash) VALUES ($1, $2)"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.UniqueViolation {
				return errs.ErrConflict
			}
		}
		return fmt.Errorf("create credential: %w", err)
	}

	return nil
}

// SeedProfile creates an empty users document for a fresh account so
// that the profile screen starts from empty strings.
func (r *Repo) SeedProfile(ctx context.Context, email string) error {
	const query = `
		INSERT INTO users (email, user_name, user_company)
		VALUES ($1, '', '')
		ON CONFLICT (email) DO NOTHING`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, email)
	if err != nil {
		return err
	}

	return nil
}
