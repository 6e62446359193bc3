package scan

import (
	"SkinSense-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		CreateScanWithProgress(ctx context.Context, scan *entities.SkinScan, records []*entities.HealingProgress) error
		GetScanByID(ctx context.Context, id string, userID string) (*entities.SkinScan, error)
		GetUserScans(ctx context.Context, userID string, limit, offset int) ([]*entities.SkinScan, error)
		GetAllUserScans(ctx context.Context, userID string) ([]*entities.SkinScan, error)
		DeleteScan(ctx context.Context, id string, userID string) (int64, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

// CreateScanWithProgress writes the scan and its derived progress records in
// one transaction so they become visible together or not at all.
func (r *scanRepository) CreateScanWithProgress(ctx context.Context, scan *entities.SkinScan, records []*entities.HealingProgress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scan).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string, userID string) (*entities.SkinScan, error) {
	var scan entities.SkinScan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) GetUserScans(ctx context.Context, userID string, limit, offset int) ([]*entities.SkinScan, error) {
	var scans []*entities.SkinScan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scan_date desc").
		Limit(limit).
		Offset(offset).
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *scanRepository) GetAllUserScans(ctx context.Context, userID string) ([]*entities.SkinScan, error) {
	var scans []*entities.SkinScan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// DeleteScan removes the scan and, through the FK cascade, every progress
// record derived from it. Returns the number of scan rows removed so the
// service can distinguish "not yours / not there" from success.
func (r *scanRepository) DeleteScan(ctx context.Context, id string, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.SkinScan{})
	return res.RowsAffected, res.Error
}
