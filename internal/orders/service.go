// Package orders holds the one piece of recurring design logic of the
// application: listing a user's orders with the status filter and the
// delivery-date ordering, plus the editor operations around a single
// order document.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/innnova/pending/internal/models/order"
	"github.com/innnova/pending/pkg/logger"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo   Repository
	logger logger.Logger
}

func NewService(repo Repository, logger logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: repository")
	}
	return &Service{repo: repo, logger: logger}, nil
}

// List returns the user's orders, only the Active ones unless showAll
// is set, ascending by delivery date. Dates that fail to parse sort
// as now, so those orders end up effectively unordered rather than
// breaking the listing.
func (s *Service) List(ctx context.Context, email string, showAll bool) ([]*order.Order, error) {
	list, err := s.repo.GetOrdersByCreator(ctx, email, !showAll)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	now := time.Now()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DeliveryTime(now).Before(list[j].DeliveryTime(now))
	})

	return list, nil
}

// Get loads a single order document.
func (s *Service) Get(ctx context.Context, id string) (*order.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// Save persists the order as a whole document, recomputing the amount
// left to pay. New orders get a generated id and start Active; the
// returned id is the one the document now lives at.
func (s *Service) Save(ctx context.Context, o *order.Order, isNew bool) (string, error) {
	if isNew {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = order.Active
	}
	o.ToPayAmount = ComputeRemaining(o.TotalAmount, o.PaidAmount)

	if err := s.repo.SaveOrder(ctx, o); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}

	return o.ID, nil
}

// Delete removes the order document. Never a soft delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteOrder(ctx, id)
}

// ToggleStatus flips Active and Completed with a status-only partial
// update and reports the new status. The caller refreshes its list
// only after this succeeds.
func (s *Service) ToggleStatus(ctx context.Context, id string) (order.Status, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get order %q: %w", id, err)
	}

	next := o.Status.Toggled()
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return "", fmt.Errorf("update status: %w", err)
	}

	return next, nil
}

// SetStatus sets the status explicitly, used by the complete and
// reopen actions of the editor.
func (s *Service) SetStatus(ctx context.Context, id string, status order.Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// ComputeRemaining subtracts the paid amount from the total. Either
// operand failing to parse counts as zero; whatever the user typed is
// never rejected.
func ComputeRemaining(total, paid string) string {
	return parseAmount(total).Sub(parseAmount(paid)).String()
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
