package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equipshare/internal/domain"
)

type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) Current() *domain.Profile {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Profile)
}

func (m *MockProfileSource) Persist(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockLedger) Create(ctx context.Context, reservationType string, user domain.User, equipment domain.Equipment, notes string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationType, user, equipment, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockLedger) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 { return &v }

func newWorkflowFixture() (*Workflow, *MockProfileSource, *MockDirectory, *MockLedger) {
	profiles := new(MockProfileSource)
	directory := new(MockDirectory)
	ledger := new(MockLedger)
	return NewWorkflow(profiles, directory, ledger), profiles, directory, ledger
}

func TestWorkflowReserveWithPersistedProfile(t *testing.T) {
	w, profiles, directory, ledger := newWorkflowFixture()

	profiles.On("Current").Return(&domain.Profile{
		ID: int64Ptr(5), PID: 100000000, FirstName: "Sol", LastName: "Student",
	})

	drill := domain.Equipment{ID: 7, Name: "Makita", Type: "drill", Status: domain.StatusAvailable, Notes: "cordless"}
	wantUser := domain.User{ID: int64Ptr(5), PID: 100000000, FirstName: "Sol", LastName: "Student"}

	ledger.On("Create", mock.Anything, "drill", wantUser, drill, "cordless").
		Return(&domain.Reservation{ID: 31, Type: "drill", User: wantUser, Equipment: drill}, nil).Once()
	directory.On("List", mock.Anything).
		Return([]domain.Equipment{{ID: 7, Status: domain.StatusUnavailable}}, nil).Once()

	res, err := w.Reserve(context.Background(), drill)

	assert.NoError(t, err)
	assert.Equal(t, int64(31), res.ID)
	assert.Equal(t, domain.StatusUnavailable, w.EquipmentList()[0].Status)
	profiles.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestWorkflowReservePersistsUnsavedProfileFirst(t *testing.T) {
	w, profiles, directory, ledger := newWorkflowFixture()

	unsaved := &domain.Profile{ID: nil, PID: 1001, FirstName: "A", LastName: "B"}
	profiles.On("Current").Return(unsaved)
	profiles.On("Persist", mock.Anything, *unsaved).
		Return(&domain.Profile{ID: int64Ptr(42), PID: 1001, FirstName: "A", LastName: "B"}, nil).Once()

	drill := domain.Equipment{ID: 7, Type: "drill", Notes: "cordless"}
	wantUser := domain.User{ID: int64Ptr(42), PID: 1001, FirstName: "A", LastName: "B"}

	ledger.On("Create", mock.Anything, "drill", wantUser, drill, "cordless").
		Return(&domain.Reservation{ID: 9, User: wantUser, Equipment: drill}, nil).Once()
	directory.On("List", mock.Anything).Return([]domain.Equipment{}, nil).Once()

	res, err := w.Reserve(context.Background(), drill)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), res.ID)
	profiles.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestWorkflowReserveNoProfile(t *testing.T) {
	w, profiles, directory, ledger := newWorkflowFixture()

	profiles.On("Current").Return(nil)

	res, err := w.Reserve(context.Background(), domain.Equipment{ID: 7})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	profiles.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
	ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	directory.AssertNotCalled(t, "List", mock.Anything)
}

func TestWorkflowReservePersistFailureStopsReservation(t *testing.T) {
	w, profiles, _, ledger := newWorkflowFixture()

	profiles.On("Current").Return(&domain.Profile{ID: nil, PID: 1001})
	profiles.On("Persist", mock.Anything, mock.Anything).
		Return(nil, errors.New("server unavailable")).Once()

	res, err := w.Reserve(context.Background(), domain.Equipment{ID: 7})

	assert.Nil(t, res)
	assert.Error(t, err)
	ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflowReserveCreateFailureSkipsRefresh(t *testing.T) {
	w, profiles, directory, ledger := newWorkflowFixture()

	profiles.On("Current").Return(&domain.Profile{ID: int64Ptr(5), PID: 100000000})
	ledger.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("already reserved")).Once()

	res, err := w.Reserve(context.Background(), domain.Equipment{ID: 7})

	assert.Nil(t, res)
	assert.Error(t, err)
	directory.AssertNotCalled(t, "List", mock.Anything)
}

func TestWorkflowReserveSurvivesRefreshFailure(t *testing.T) {
	w, profiles, directory, ledger := newWorkflowFixture()

	profiles.On("Current").Return(&domain.Profile{ID: int64Ptr(5), PID: 100000000})
	ledger.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Reservation{ID: 31}, nil).Once()
	directory.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()

	res, err := w.Reserve(context.Background(), domain.Equipment{ID: 7})

	assert.Error(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, int64(31), res.ID)
	}
}

func TestWorkflowReleaseRefreshesReservations(t *testing.T) {
	w, _, _, ledger := newWorkflowFixture()

	ledger.On("Remove", mock.Anything, int64(31)).Return(nil).Once()
	ledger.On("List", mock.Anything).Return([]domain.Reservation{}, nil).Once()

	err := w.Release(context.Background(), 31)

	assert.NoError(t, err)
	assert.Empty(t, w.ReservationList())
	ledger.AssertExpectations(t)
}

func TestWorkflowReleaseFailureLeavesListing(t *testing.T) {
	w, _, _, ledger := newWorkflowFixture()

	ledger.On("Remove", mock.Anything, int64(31)).Return(errors.New("server unavailable")).Once()

	err := w.Release(context.Background(), 31)

	assert.Error(t, err)
	ledger.AssertNotCalled(t, "List", mock.Anything)
}
