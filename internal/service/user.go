package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/rs/zerolog"
)

type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, payload model.NewUser) (*model.User, error)
}

type UserService struct {
	logger *zerolog.Logger
	users  UserStore
	jobs   Enqueuer
}

// NewUserService builds a UserService. jobs may be nil, in which case no
// welcome email is sent.
func NewUserService(logger *zerolog.Logger, users UserStore, jobs Enqueuer) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		jobs:   jobs,
	}
}

func (s *UserService) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetUserWithEmail(ctx, email)
	if err != nil {
		logLookupFailure(s.logger, err).Msg("failed to get user by email")
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, id)
	if err != nil {
		logLookupFailure(s.logger, err).Int64("user_id", id).Msg("failed to get user by id")
		return nil, err
	}
	return user, nil
}

// AddUser stores the user and queues the welcome email. A failure to queue
// is logged and does not fail the call.
func (s *UserService) AddUser(ctx context.Context, payload model.NewUser) (*model.User, error) {
	user, err := s.users.AddUser(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to add user")
		return nil, err
	}

	s.enqueueWelcome(ctx, user)

	return user, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, user *model.User) {
	if s.jobs == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}

	if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		return
	}

	s.logger.Debug().Int64("user_id", user.ID).Msg("welcome email enqueued")
}

// logLookupFailure logs a missing row at debug and anything else at error.
func logLookupFailure(logger *zerolog.Logger, err error) *zerolog.Event {
	if sqlerr.IsNotFound(err) {
		return logger.Debug().Err(err)
	}
	return logger.Error().Err(err)
}
