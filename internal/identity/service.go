// Package identity wraps account creation and sign in against the
// credential store. It plays the part of the external identity
// provider: the rest of the application only sees email-bearing
// identities and verbatim error messages.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	trm "github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/innnova/pending/internal/config"
	"github.com/innnova/pending/internal/jwt"
	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the provider's view of a signed in user.
type Identity struct {
	Email string
	Token string
}

type Service struct {
	repo    Repository
	trm     trm.Manager
	logger  logger.Logger
	config  *config.Config
	mu      sync.Mutex
	current *Identity
}

func NewService(repo Repository, trManager trm.Manager, logger logger.Logger, config *config.Config) (*Service, error) {
	if config == nil {
		return nil, errors.New("nil dependency: config")
	}
	if trManager == nil {
		return nil, errors.New("nil dependency: transaction manager")
	}
	return &Service{repo: repo, trm: trManager, logger: logger, config: config}, nil
}

// SignUp creates an account for the email and signs it in. The empty
// profile document is seeded in the same transaction.
func (s *Service) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, errs.ErrEmptyField
	}

	hashPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.config.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateCredential(ctx, email, string(hashPassword)); err != nil {
			return err
		}
		return s.repo.SeedProfile(ctx, email)
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("%w: account %q already exists", err, email)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return s.signIn(email)
}

// SignIn authenticates the email/password pair.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, errs.ErrEmptyField
	}

	c, err := s.repo.GetCredential(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %q not found", errs.ErrInvalidCredentials, email)
		}
		return nil, fmt.Errorf("get account %q: %w", email, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, fmt.Errorf("%w: password", errs.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("compare passwords: %w", err)
	}

	return s.signIn(email)
}

// Current returns the identity established by the last successful
// sign in of this run, or nil.
func (s *Service) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) signIn(email string) (*Identity, error) {
	token, err := jwt.BuildString(email, s.config.JWT.SigningKey, s.config.JWT.Expiration)
	if err != nil {
		return nil, fmt.Errorf("build token: %w", err)
	}

	id := &Identity{Email: email, Token: token}

	s.mu.Lock()
	s.current = id
	s.mu.Unlock()

	return id, nil
}
