package promotion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Filter interface {
	Apply(*gorm.DB) *gorm.DB
}

type PageFilter struct {
	Offset int
	Limit  int
}

func (f PageFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(f.Offset).Limit(f.Limit)
}

type CreatorFilter struct {
	ID uuid.UUID
}

func (f CreatorFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", f.ID)
}

type GroupFilter struct {
	Group Group
}

func (f GroupFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("\"group\" = ?", f.Group)
}

type TypeFilter struct {
	Type Type
}

func (f TypeFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", f.Type)
}

// NotFinishedFilter keeps promotions without a finish time or finishing after
// the given moment.
type NotFinishedFilter struct {
	Now time.Time
}

func (f NotFinishedFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("finish_at IS NULL OR finish_at > ?", f.Now)
}

// ListedFilter hides shareable-link variants from ordinary listings.
type ListedFilter struct{}

func (f ListedFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("link = ?", false)
}
