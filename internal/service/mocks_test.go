package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) AddUser(ctx context.Context, payload model.NewUser) (*model.User, error) {
	args := m.Called(ctx, payload)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockPropertyStore struct {
	mock.Mock
}

func (m *mockPropertyStore) GetAllProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	args := m.Called(ctx, filter)
	properties, _ := args.Get(0).([]model.Property)
	return properties, args.Error(1)
}

func (m *mockPropertyStore) AddProperty(ctx context.Context, payload model.NewProperty) (*model.Property, error) {
	args := m.Called(ctx, payload)
	property, _ := args.Get(0).(*model.Property)
	return property, args.Error(1)
}

type mockReservationStore struct {
	mock.Mock
}

func (m *mockReservationStore) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	args := m.Called(ctx, guestID, limit)
	reservations, _ := args.Get(0).([]model.Reservation)
	return reservations, args.Error(1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
