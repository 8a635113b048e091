package orders

import (
	"context"
	"database/sql"
	"errors"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/internal/models/order"
	"github.com/innnova/pending/pkg/logger"
)

// Repository is the orders collection boundary: point reads and
// writes, a status-only partial update, point delete and an
// equality-filtered query. Ordering is the caller's business.
type Repository interface {
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	SaveOrder(ctx context.Context, o *order.Order) error
	UpdateStatus(ctx context.Context, id string, status order.Status) error
	DeleteOrder(ctx context.Context, id string) error
	GetOrdersByCreator(ctx context.Context, email string, onlyActive bool) ([]*order.Order, error)
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

func (r *Repo) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	const query = `
		SELECT id, "order", product, client, phone, order_date, delivery_date,
			total_amount, paid_amount, to_pay_amount, details, status, creator_mail
		FROM orders WHERE id = $1`

	o := new(order.Order)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.Name,
		&o.Product,
		&o.Client,
		&o.Phone,
		&o.OrderDate,
		&o.DeliveryDate,
		&o.TotalAmount,
		&o.PaidAmount,
		&o.ToPayAmount,
		&o.Details,
		&o.Status,
		&o.CreatorMail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

// SaveOrder writes the whole document at its id, last writer wins.
// creator_mail is excluded from the conflict update so it stays what
// it was at creation.
func (r *Repo) SaveOrder(ctx context.Context, o *order.Order) error {
	const query = `
		INSERT INTO orders
			(id, "order", product, client, phone, order_date, delivery_date,
			total_amount, paid_amount, to_pay_amount, details, status, creator_mail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			"order" = EXCLUDED."order",
			product = EXCLUDED.product,
			client = EXCLUDED.client,
			phone = EXCLUDED.phone,
			order_date = EXCLUDED.order_date,
			delivery_date = EXCLUDED.delivery_date,
			total_amount = EXCLUDED.total_amount,
			paid_amount = EXCLUDED.paid_amount,
			to_pay_amount = EXCLUDED.to_pay_amount,
			details = EXCLUDED.details,
			status = EXCLUDED.status`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		o.ID,
		o.Name,
		o.Product,
		o.Client,
		o.Phone,
		o.OrderDate,
		o.DeliveryDate,
		o.TotalAmount,
		o.PaidAmount,
		o.ToPayAmount,
		o.Details,
		o.Status,
		o.CreatorMail,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	const query = "UPDATE orders SET status = $1 WHERE id = $2"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *Repo) DeleteOrder(ctx context.Context, id string) error {
	const query = "DELETE FROM orders WHERE id = $1"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repo) GetOrdersByCreator(ctx context.Context, email string, onlyActive bool) ([]*order.Order, error) {
	const query = `
		SELECT id, "order", product, client, phone, order_date, delivery_date,
			total_amount, paid_amount, to_pay_amount, details, status, creator_mail
		FROM orders WHERE creator_mail = $1`
	const activeOnly = query + " AND status = 'Active'"

	q := query
	if onlyActive {
		q = activeOnly
	}

	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	defer func() {
		if err = rows.Close(); err != nil {
			r.logger.Errorf("close rows: %s", err)
		}
	}()

	orders := make([]*order.Order, 0)

	for rows.Next() {
		o := new(order.Order)
		err = rows.Scan(
			&o.ID,
			&o.Name,
			&o.Product,
			&o.Client,
			&o.Phone,
			&o.OrderDate,
			&o.DeliveryDate,
			&o.TotalAmount,
			&o.PaidAmount,
			&o.ToPayAmount,
			&o.Details,
			&o.Status,
			&o.CreatorMail,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	// Rows.Err will report the last error encountered by Rows.Scan.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
