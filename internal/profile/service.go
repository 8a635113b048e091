package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/internal/models/profile"
	"github.com/innnova/pending/pkg/logger"
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

// Load returns the stored profile; a user without one gets empty
// strings, not an error.
func (s *Service) Load(ctx context.Context, email string) (*profile.Profile, error) {
	p, err := s.repo.GetProfile(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return &profile.Profile{Email: email}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// Save overwrites the profile wholesale. The only guard is a
// non-empty email.
func (s *Service) Save(ctx context.Context, email, name, company string) error {
	if email == "" {
		return fmt.Errorf("%w: email", errs.ErrEmptyField)
	}
	return s.repo.SaveProfile(ctx, &profile.Profile{
		Email:   email,
		Name:    name,
		Company: company,
	})
}
