package promotion

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(id uuid.UUID) (*Promotion, error) {
	var res Promotion
	err := r.db.
		Where(&Promotion{ID: id}).
		Take(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Repo) GetByFilters(filters []Filter) ([]Promotion, error) {
	db := r.db.Model(&Promotion{})
	for _, f := range filters {
		db = f.Apply(db)
	}

	var res []Promotion
	if err := db.Find(&res).Error; err != nil {
		return nil, err
	}

	return res, nil
}
