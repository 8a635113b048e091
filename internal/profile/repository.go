package profile

import (
	"context"
	"database/sql"
	"errors"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/internal/models/profile"
	"github.com/innnova/pending/pkg/logger"
)

type Repository interface {
	GetProfile(ctx context.Context, email string) (*profile.Profile, error)
	SaveProfile(ctx context.Context, p *profile.Profile) error
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

func (r *Repo) GetProfile(ctx context.Context, email string) (*profile.Profile, error) {
	const query = "SELECT email, user_name, user_company FROM users WHERE email = $1"

	p := new(profile.Profile)

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&p.Email,
		&p.Name,
		&p.Company,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// SaveProfile overwrites the users document wholesale.
func (r *Repo) SaveProfile(ctx context.Context, p *profile.Profile) error {
	const query = `
		INSERT INTO users (email, user_name, user_company)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			user_name = EXCLUDED.user_name,
			user_company = EXCLUDED.user_company`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, p.Email, p.Name, p.Company)
	if err != nil {
		return err
	}

	return nil
}
