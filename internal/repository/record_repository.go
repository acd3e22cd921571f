package repository

import (
	"context"

	"github.com/rmacedo/registros-api/internal/models"
	"gorm.io/gorm"
)

// RecordRepository defines the data access contract shared by every
// record entity. M is the entity struct and PM its pointer type, so a
// single implementation serves financial histories, associated files
// and associated histories alike.
type RecordRepository[M any, PM models.RecordPtr[M]] interface {
	Create(ctx context.Context, rec PM) error
	FindByID(ctx context.Context, id uint) (PM, error)
	FindAll(ctx context.Context) ([]M, error)
	FindActive(ctx context.Context) ([]M, error)
	Save(ctx context.Context, rec PM) error
}

type recordRepository[M any, PM models.RecordPtr[M]] struct {
	db *gorm.DB
}

// NewRecordRepository creates a GORM-backed repository for one record entity
func NewRecordRepository[M any, PM models.RecordPtr[M]](db *gorm.DB) RecordRepository[M, PM] {
	return &recordRepository[M, PM]{db: db}
}

func (r *recordRepository[M, PM]) Create(ctx context.Context, rec PM) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepository[M, PM]) FindByID(ctx context.Context, id uint) (PM, error) {
	rec := PM(new(M))
	if err := r.db.WithContext(ctx).First(rec, id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *recordRepository[M, PM]) FindAll(ctx context.Context) ([]M, error) {
	var recs []M
	err := r.db.WithContext(ctx).Order("id").Find(&recs).Error
	return recs, err
}

func (r *recordRepository[M, PM]) FindActive(ctx context.Context) ([]M, error) {
	var recs []M
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&recs).Error
	return recs, err
}

func (r *recordRepository[M, PM]) Save(ctx context.Context, rec PM) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
