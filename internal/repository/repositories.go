package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db.
func New(db Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Reservations: NewReservationRepository(db),
		Properties:   NewPropertyRepository(db),
	}
}
