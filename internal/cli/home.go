package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/innnova/pending/internal/models/order"
)

// homeScreen is the order list. Every entry to the screen and every
// mutation triggers a full re-fetch; a failed fetch leaves the
// previously rendered rows visible. It reports true when the user
// logged out and the auth screen should take over.
func (a *App) homeScreen(ctx context.Context) (bool, error) {
	fmt.Fprintln(a.out, "Home")
	a.showAll = false
	a.refresh(ctx)

	for {
		a.render(ctx)

		cmd, err := getSimpleText(a.reader,
			"Commands: all, pending, open <n>, add, check <n>, profile, logout, exit", a.out)
		if err != nil {
			return false, err
		}

		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "all":
			a.showAll = true
			a.refresh(ctx)

		case "pending":
			a.showAll = false
			a.refresh(ctx)

		case "open":
			if o, ok := a.rowAt(fields); ok {
				if err := a.orderScreen(ctx, o.ID); err != nil {
					return false, err
				}
				a.refresh(ctx)
			}

		case "add":
			if err := a.orderScreen(ctx, ""); err != nil {
				return false, err
			}
			a.refresh(ctx)

		case "check":
			if o, ok := a.rowAt(fields); ok {
				a.toggle(ctx, o)
			}

		case "profile":
			if err := a.profileScreen(ctx); err != nil {
				return false, err
			}
			a.refresh(ctx)

		case "logout":
			if err := a.session.Logout(); err != nil {
				a.logger.Errorf("clear session: %s", err)
			}
			return true, nil

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return false, nil

		case "help":
			// The command list is reprinted on the next loop turn.

		default:
			fmt.Fprintln(a.out, "Unknown command:", fields[0])
		}
	}
}

// refresh re-queries the store and replaces the rows wholesale. On
// failure the stale rows stay on screen.
func (a *App) refresh(ctx context.Context) {
	email, ok := a.session.Current()
	if !ok {
		a.logger.Error("user not authenticated")
		return
	}

	rows, err := a.orders.List(ctx, email, a.showAll)
	if err != nil {
		a.logger.Errorf("error getting the list of orders: %s", err)
		return
	}
	a.rows = rows
}

func (a *App) render(ctx context.Context) {
	email, _ := a.session.Current()

	company := ""
	if p, err := a.profiles.Load(ctx, email); err == nil && p.Company != "" {
		company = " — " + p.Company
	}
	fmt.Fprintf(a.out, "\n%s%s\n", email, company)

	filter := "pending"
	if a.showAll {
		filter = "all"
	}
	fmt.Fprintf(a.out, "Orders (%s): %d\n", filter, len(a.rows))

	for i, o := range a.rows {
		mark := " "
		if o.Status == order.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d. [%s] %-20s %-12s %s\n",
			i+1, mark, o.Name, o.DeliveryDate, o.Client)
	}
}

// toggle flips one row's status; the list is re-fetched only after
// the partial update succeeded, so the row does not change until the
// store confirmed it.
func (a *App) toggle(ctx context.Context, o *order.Order) {
	status, err := a.orders.ToggleStatus(ctx, o.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Error updating the status.")
		a.logger.Errorf("toggle status: %s", err)
		return
	}

	if status == order.Completed {
		fmt.Fprintln(a.out, "Order completed")
	} else {
		fmt.Fprintln(a.out, "Order marked as pending")
	}

	a.refresh(ctx)
}

func (a *App) rowAt(fields []string) (*order.Order, bool) {
	if len(fields) < 2 {
		fmt.Fprintln(a.out, "Row number required")
		return nil, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(a.rows) {
		fmt.Fprintln(a.out, "No such row:", fields[1])
		return nil, false
	}
	return a.rows[n-1], true
}
