package store

import (
	"context"
	"errors"

	"github.com/instalink/backend/internal/apperr"
	"github.com/instalink/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountStore persists linked Instagram accounts. Upsert is the only write
// path; rows are never deleted.
type AccountStore interface {
	Upsert(ctx context.Context, account models.InstagramAccount) (models.InstagramAccount, error)
	Get(ctx context.Context, userID string) (models.InstagramAccount, error)
}

// GormStore is the postgres-backed AccountStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Upsert replaces any existing row for the account's user_id. Atomicity is
// whatever postgres gives a single INSERT ... ON CONFLICT DO UPDATE:
// last writer wins per user_id.
func (s *GormStore) Upsert(ctx context.Context, account models.InstagramAccount) (models.InstagramAccount, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&account).Error
	if err != nil {
		return models.InstagramAccount{}, &apperr.StoreError{Err: err}
	}
	return account, nil
}

func (s *GormStore) Get(ctx context.Context, userID string) (models.InstagramAccount, error) {
	var account models.InstagramAccount
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.InstagramAccount{}, &apperr.NotFoundError{Detail: "Instagram account not found for this user"}
	}
	if err != nil {
		return models.InstagramAccount{}, &apperr.StoreError{Err: err}
	}
	return account, nil
}
