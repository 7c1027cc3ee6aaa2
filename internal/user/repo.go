package user

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(id uuid.UUID) (*User, error) {
	user := User{ID: id}
	request := r.db.Take(&user)
	if err := request.Error; err != nil {
		return nil, fmt.Errorf("get user by id #%s: %w", id, err)
	}

	return &user, nil
}

func (r *Repo) GetByUsername(username string) (*User, error) {
	var user User
	request := r.db.Where(User{Username: username}).Take(&user)
	if err := request.Error; err != nil {
		return nil, fmt.Errorf("get user by username %s: %w", username, err)
	}

	return &user, nil
}
