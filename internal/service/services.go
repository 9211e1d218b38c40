package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var jobs Enqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Users:        NewUserService(s.Logger, repos.Users, jobs),
		Properties:   NewPropertyService(s.Logger, repos.Properties),
		Reservations: NewReservationService(s.Logger, repos.Reservations),
	}
}
