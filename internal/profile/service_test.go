package profile

import (
	"context"
	"sync"
	"testing"

	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/internal/models/profile"
	"github.com/innnova/pending/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Lock in case of t.Parallel call.
type mockRepository struct {
	items map[string]profile.Profile
	mu    sync.Mutex
}

var _ Repository = (*mockRepository)(nil)

func (m *mockRepository) GetProfile(_ context.Context, email string) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func (m *mockRepository) SaveProfile(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.Email] = *p
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(
		&mockRepository{items: make(map[string]profile.Profile)},
		logger.NewWithZap(zap.NewNop()),
	)
	require.NoError(t, err)
	return s
}

func TestService_Load_MissingDocumentMeansEmptyDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	p, err := s.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Company)
}

func TestService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	require.NoError(t, s.Save(ctx, "a@x.com", "Ana", "Innnova"))

	p, err := s.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "Innnova", p.Company)

	// Save is a wholesale overwrite.
	require.NoError(t, s.Save(ctx, "a@x.com", "Ana", ""))

	p, err = s.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, p.Company)
}

func TestService_Save_EmptyEmail(t *testing.T) {
	err := newTestService(t).Save(context.Background(), "", "Ana", "Innnova")
	assert.ErrorIs(t, err, errs.ErrEmptyField)
}
