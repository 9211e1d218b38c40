package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestUserService_AddUser_EnqueuesWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	jobs := new(mockEnqueuer)

	payload := model.NewUser{Name: "Kian Yang", Email: "kian@example.com", Password: "pw"}
	created := &model.User{ID: 3, Name: payload.Name, Email: payload.Email, Password: payload.Password}

	store.On("AddUser", ctx, payload).Return(created, nil)
	jobs.On("EnqueueContext", ctx, mock.MatchedBy(func(task *asynq.Task) bool {
		var p job.WelcomeEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return false
		}
		return task.Type() == job.TaskWelcome && p.To == "kian@example.com" && p.Name == "Kian Yang"
	})).Return(&asynq.TaskInfo{}, nil)

	svc := NewUserService(nopLogger(), store, jobs)
	user, err := svc.AddUser(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, created, user)

	store.AssertExpectations(t)
	jobs.AssertExpectations(t)
}

func TestUserService_AddUser_EnqueueFailureIgnored(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	jobs := new(mockEnqueuer)

	payload := model.NewUser{Name: "A", Email: "a@example.com", Password: "pw"}
	store.On("AddUser", ctx, payload).Return(&model.User{ID: 1, Email: "a@example.com"}, nil)
	jobs.On("EnqueueContext", ctx, mock.Anything).Return(nil, errors.New("redis down"))

	user, err := NewUserService(nopLogger(), store, jobs).AddUser(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserService_AddUser_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	jobs := new(mockEnqueuer)

	storeErr := errors.New("duplicate key")
	store.On("AddUser", ctx, mock.Anything).Return(nil, storeErr)

	user, err := NewUserService(nopLogger(), store, jobs).AddUser(ctx, model.NewUser{})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, storeErr)
	jobs.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestUserService_AddUser_WithoutJobs(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	store.On("AddUser", ctx, mock.Anything).Return(&model.User{ID: 2}, nil)

	user, err := NewUserService(nopLogger(), store, nil).AddUser(ctx, model.NewUser{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestUserService_GetUserWithEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	store.On("GetUserWithEmail", ctx, "missing@example.com").Return(nil, sqlerr.NotFound("users"))

	user, err := NewUserService(nopLogger(), store, nil).GetUserWithEmail(ctx, "missing@example.com")
	assert.Nil(t, user)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestUserService_GetUserWithID(t *testing.T) {
	ctx := context.Background()
	store := new(mockUserStore)
	store.On("GetUserWithID", ctx, int64(7)).Return(&model.User{ID: 7, Name: "Seven"}, nil)

	user, err := NewUserService(nopLogger(), store, nil).GetUserWithID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Seven", user.Name)
}

func TestPropertyService_GetAllProperties(t *testing.T) {
	ctx := context.Background()
	store := new(mockPropertyStore)

	filter := model.PropertyFilter{City: "Vancouver"}
	store.On("GetAllProperties", ctx, filter).Return([]model.Property{{ID: 1}, {ID: 2}}, nil)

	properties, err := NewPropertyService(nopLogger(), store).GetAllProperties(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, properties, 2)
}

func TestPropertyService_GetAllProperties_Failure(t *testing.T) {
	ctx := context.Background()
	store := new(mockPropertyStore)

	storeErr := errors.New("boom")
	store.On("GetAllProperties", ctx, mock.Anything).Return(nil, storeErr)

	properties, err := NewPropertyService(nopLogger(), store).GetAllProperties(ctx, model.PropertyFilter{})
	assert.Nil(t, properties)
	assert.ErrorIs(t, err, storeErr)
}

func TestPropertyService_AddProperty(t *testing.T) {
	ctx := context.Background()
	store := new(mockPropertyStore)

	payload := model.NewProperty{OwnerID: 1, Title: "Cabin", CostPerNight: 12000}
	store.On("AddProperty", ctx, payload).Return(&model.Property{ID: 9, OwnerID: 1, Title: "Cabin"}, nil)

	property, err := NewPropertyService(nopLogger(), store).AddProperty(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9), property.ID)
	store.AssertExpectations(t)
}

func TestReservationService_GetAllReservations(t *testing.T) {
	ctx := context.Background()
	store := new(mockReservationStore)
	store.On("GetAllReservations", ctx, int64(1), 10).Return([]model.Reservation{}, nil)

	reservations, err := NewReservationService(nopLogger(), store).GetAllReservations(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestReservationService_GetAllReservations_Failure(t *testing.T) {
	ctx := context.Background()
	store := new(mockReservationStore)
	store.On("GetAllReservations", ctx, int64(1), 10).Return(nil, errors.New("timeout"))

	reservations, err := NewReservationService(nopLogger(), store).GetAllReservations(ctx, 1, 10)
	assert.Nil(t, reservations)
	assert.Error(t, err)
}
