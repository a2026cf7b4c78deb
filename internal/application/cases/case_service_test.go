package cases

import (
	"context"
	"errors"
	"testing"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCaseRepository is a mock implementation of CaseRepository
type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*cases.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByCaseRef(ctx context.Context, caseRef int64) (*cases.Case, error) {
	args := m.Called(ctx, caseRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByUPRN(ctx context.Context, uprn string) ([]cases.Case, error) {
	args := m.Called(ctx, uprn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cases.Case), args.Error(1)
}

func (m *MockCaseRepository) Save(ctx context.Context, c *cases.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockUacQidLinkRepository is a mock implementation of UacQidLinkRepository
type MockUacQidLinkRepository struct {
	mock.Mock
}

func (m *MockUacQidLinkRepository) FindByQID(ctx context.Context, qid string) (*uacqid.UacQidLink, error) {
	args := m.Called(ctx, qid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uacqid.UacQidLink), args.Error(1)
}

func (m *MockUacQidLinkRepository) FindByCaseID(ctx context.Context, caseID uuid.UUID) ([]*uacqid.UacQidLink, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*uacqid.UacQidLink), args.Error(1)
}

func (m *MockUacQidLinkRepository) Save(ctx context.Context, link *uacqid.UacQidLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockUacQidLinkRepository) SaveWithEvents(ctx context.Context, link *uacqid.UacQidLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func newTestCase(t *testing.T) *cases.Case {
	t.Helper()
	c, err := cases.NewCase(1234567890, cases.CaseTypeHousehold, cases.AddressLevelUnit, "E1000", uuid.New())
	require.NoError(t, err)
	c.UPRN = "100040239948"
	return c
}

func TestCaseServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns case without events by default", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		c := newTestCase(t)
		caseRepo.On("FindByID", ctx, c.ID).Return(c, nil)

		resp, err := service.GetByID(ctx, c.ID, false)

		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.ID)
		assert.Equal(t, int64(1234567890), resp.CaseRef)
		assert.Equal(t, "HH", resp.CaseType)
		assert.Nil(t, resp.CaseEvents)
		linkRepo.AssertNotCalled(t, "FindByCaseID", mock.Anything, mock.Anything)
	})

	t.Run("gathers events from linked pairs when requested", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		c := newTestCase(t)
		link, err := uacqid.NewUacQidLink("0120000000000100", "abcd1234efgh5678")
		require.NoError(t, err)
		require.NoError(t, link.LinkToCase(c.ID, uuid.New()))

		caseRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		linkRepo.On("FindByCaseID", ctx, c.ID).Return([]*uacqid.UacQidLink{link}, nil)

		resp, err := service.GetByID(ctx, c.ID, true)

		require.NoError(t, err)
		require.Len(t, resp.CaseEvents, 1)
		assert.Equal(t, "QUESTIONNAIRE_LINKED", resp.CaseEvents[0].EventType)
	})

	t.Run("propagates not found", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		id := uuid.New()
		caseRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(ctx, id, false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCaseServiceGetByCaseRef(t *testing.T) {
	ctx := context.Background()

	t.Run("returns case by reference", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		c := newTestCase(t)
		caseRepo.On("FindByCaseRef", ctx, int64(1234567890)).Return(c, nil)

		resp, err := service.GetByCaseRef(ctx, 1234567890, false)

		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.ID)
	})

	t.Run("propagates not found", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		caseRepo.On("FindByCaseRef", ctx, int64(999)).Return(nil, shared.ErrNotFound)

		_, err := service.GetByCaseRef(ctx, 999, false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCaseServiceGetByUPRN(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all cases at the property", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		first := newTestCase(t)
		second := newTestCase(t)
		caseRepo.On("FindByUPRN", ctx, "100040239948").Return([]cases.Case{*first, *second}, nil)

		resp, err := service.GetByUPRN(ctx, "100040239948", false)

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, first.ID, resp[0].ID)
		assert.Equal(t, second.ID, resp[1].ID)
	})

	t.Run("propagates not found for unknown UPRN", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		caseRepo.On("FindByUPRN", ctx, "0").Return(nil, shared.ErrNotFound)

		_, err := service.GetByUPRN(ctx, "0", false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		caseRepo := new(MockCaseRepository)
		linkRepo := new(MockUacQidLinkRepository)
		service := NewCaseService(caseRepo, linkRepo)

		caseRepo.On("FindByUPRN", ctx, "100040239948").Return(nil, errors.New("connection reset"))

		_, err := service.GetByUPRN(ctx, "100040239948", false)

		assert.Error(t, err)
	})
}
