package interaction

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, rec *Interaction) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*Interaction, error) {
	var rec Interaction
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns interactions newest first. Timestamp ties break arbitrarily.
func (r *Repo) List(ctx context.Context, skip, limit int) ([]Interaction, error) {
	var recs []Interaction
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListByUser returns the user's interactions newest first. An unmatched user
// yields an empty slice, not an error.
func (r *Repo) ListByUser(ctx context.Context, userID string, skip, limit int) ([]Interaction, error) {
	var recs []Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdateFields applies only the supplied keys; an explicit nil value clears a
// nullable column. Returns gorm.ErrRecordNotFound for an unknown id.
func (r *Repo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*Interaction, error) {
	var rec Interaction
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&rec).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the row permanently and returns what was removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*Interaction, error) {
	var rec Interaction
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&Interaction{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
