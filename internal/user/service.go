package user

import (
	"github.com/google/uuid"
)

type DataProvider interface {
	GetByID(uuid.UUID) (*User, error)
	GetByUsername(string) (*User, error)
}

type Service struct {
	repo DataProvider
}

func NewService(r DataProvider) *Service {
	return &Service{
		repo: r,
	}
}

func (s *Service) GetByID(id uuid.UUID) (*User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUsername(username string) (*User, error) {
	return s.repo.GetByUsername(username)
}
