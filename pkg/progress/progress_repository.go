package progress

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProgressRepository interface {
		GetProgressByID(ctx context.Context, id string, userID string) (*entities.HealingProgress, error)
		GetUserProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error)
		GetActiveProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error)
		GetResolvedProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error)
		UpdateProgressFields(ctx context.Context, id string, userID string, updates map[string]interface{}) (int64, error)
		AppendProgressPhoto(ctx context.Context, id string, userID string, photoJSON []byte) (int64, error)
		DeleteProgress(ctx context.Context, id string, userID string) (int64, error)
	}

	progressRepository struct {
		db *gorm.DB
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetProgressByID(ctx context.Context, id string, userID string) (*entities.HealingProgress, error) {
	var record entities.HealingProgress
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *progressRepository) GetUserProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error) {
	var records []*entities.HealingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *progressRepository) GetActiveProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error) {
	var records []*entities.HealingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, domain.ProgressStatusResolved).
		Order("updated_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *progressRepository) GetResolvedProgress(ctx context.Context, userID string) ([]*entities.HealingProgress, error) {
	var records []*entities.HealingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.ProgressStatusResolved).
		Order("updated_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateProgressFields applies a partial merge filtered by id and owner.
// Zero rows affected means not found or not owned; callers treat both the
// same so one user cannot probe another's record ids.
func (r *progressRepository) UpdateProgressFields(ctx context.Context, id string, userID string, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.HealingProgress{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// AppendProgressPhoto pushes the append down to Postgres as a jsonb
// concatenation, so concurrent attachments to the same record accumulate
// instead of racing a read-modify-write.
func (r *progressRepository) AppendProgressPhoto(ctx context.Context, id string, userID string, photoJSON []byte) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.HealingProgress{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("photos", gorm.Expr("photos || ?::jsonb", string(photoJSON)))
	return res.RowsAffected, res.Error
}

func (r *progressRepository) DeleteProgress(ctx context.Context, id string, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.HealingProgress{})
	return res.RowsAffected, res.Error
}
