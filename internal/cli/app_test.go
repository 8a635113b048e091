package cli

import (
	"context"
	"errors"
	"io"

	"github.com/innnova/pending/internal/identity"
	"github.com/innnova/pending/internal/models/order"
	"github.com/innnova/pending/internal/models/profile"
)

// Stubs standing in for the services behind the screens.

type stubOrders struct {
	lists   map[bool][]*order.Order
	listErr error
	saved   []*order.Order
	toggled []string
	status  order.Status
}

func (s *stubOrders) List(_ context.Context, _ string, showAll bool) ([]*order.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.lists[showAll], nil
}

func (s *stubOrders) Get(_ context.Context, id string) (*order.Order, error) {
	for _, o := range s.lists[true] {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubOrders) Save(_ context.Context, o *order.Order, isNew bool) (string, error) {
	if isNew {
		o.ID = "generated"
	}
	s.saved = append(s.saved, o)
	return o.ID, nil
}

func (s *stubOrders) Delete(_ context.Context, _ string) error { return nil }

func (s *stubOrders) ToggleStatus(_ context.Context, id string) (order.Status, error) {
	s.toggled = append(s.toggled, id)
	return s.status, nil
}

func (s *stubOrders) SetStatus(_ context.Context, _ string, _ order.Status) error { return nil }

type stubProfiles struct {
	stored profile.Profile
}

func (s *stubProfiles) Load(_ context.Context, email string) (*profile.Profile, error) {
	p := s.stored
	p.Email = email
	return &p, nil
}

func (s *stubProfiles) Save(_ context.Context, email, name, company string) error {
	s.stored = profile.Profile{Email: email, Name: name, Company: company}
	return nil
}

type stubIdentity struct {
	err      error
	signedIn []string
	signedUp []string
}

func (s *stubIdentity) SignUp(_ context.Context, email, _ string) (*identity.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.signedUp = append(s.signedUp, email)
	return &identity.Identity{Email: email, Token: "t"}, nil
}

func (s *stubIdentity) SignIn(_ context.Context, email, _ string) (*identity.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.signedIn = append(s.signedIn, email)
	return &identity.Identity{Email: email, Token: "t"}, nil
}

type stubSession struct {
	email string
}

func (s *stubSession) IsLoggedIn() bool         { return s.email != "" }
func (s *stubSession) Login(email string) error { s.email = email; return nil }
func (s *stubSession) Logout() error            { s.email = ""; return nil }
func (s *stubSession) Current() (string, bool)  { return s.email, s.email != "" }

func stubPassword(_ io.Writer) ([]byte, error) { return []byte("secret"), nil }
