// Package cli is the terminal rendition of the application's screens:
// the auth screen, the home screen with the order list, the order
// editor and the profile editor. One goroutine drives the whole
// interaction; every store call is synchronous and its result is
// rendered right away.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/innnova/pending/internal/identity"
	"github.com/innnova/pending/internal/models/order"
	"github.com/innnova/pending/internal/models/profile"
	"github.com/innnova/pending/internal/whatsapp"
	"github.com/innnova/pending/pkg/logger"
)

// Service boundaries the screens operate against. The concrete
// services satisfy these; tests provide lightweight stubs.
type orderService interface {
	List(ctx context.Context, email string, showAll bool) ([]*order.Order, error)
	Get(ctx context.Context, id string) (*order.Order, error)
	Save(ctx context.Context, o *order.Order, isNew bool) (string, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (order.Status, error)
	SetStatus(ctx context.Context, id string, status order.Status) error
}

type profileService interface {
	Load(ctx context.Context, email string) (*profile.Profile, error)
	Save(ctx context.Context, email, name, company string) error
}

type identityService interface {
	SignUp(ctx context.Context, email, password string) (*identity.Identity, error)
	SignIn(ctx context.Context, email, password string) (*identity.Identity, error)
}

type sessionStore interface {
	IsLoggedIn() bool
	Login(email string) error
	Logout() error
	Current() (string, bool)
}

type App struct {
	orders   orderService
	profiles profileService
	identity identityService
	session  sessionStore
	logger   logger.Logger
	reader   *bufio.Reader
	out      io.Writer
	open     whatsapp.Opener

	// Home screen state: the last rendered list, replaced wholesale
	// on every successful fetch, and the current filter.
	rows    []*order.Order
	showAll bool
}

func NewApp(
	orders orderService,
	profiles profileService,
	identity identityService,
	session sessionStore,
	logger logger.Logger,
) *App {
	return &App{
		orders:   orders,
		profiles: profiles,
		identity: identity,
		session:  session,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		open:     openLink,
	}
}

// Run is the application entry flow: session check, then the auth
// screen when no email is remembered, then the home screen. Logging
// out routes back to the auth screen.
func (a *App) Run(ctx context.Context) error {
	for {
		if !a.session.IsLoggedIn() {
			ok, err := a.authScreen(ctx)
			if err != nil || !ok {
				return err
			}
		}

		again, err := a.homeScreen(ctx)
		if err != nil || !again {
			return err
		}
	}
}

// openLink hands the link to the desktop; an error means the target
// application could not be resolved.
func openLink(link string) error {
	return exec.Command("xdg-open", link).Run()
}
