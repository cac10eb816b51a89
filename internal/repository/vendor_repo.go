package repository

import (
	"context"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VendorRepository reads and seeds the vendors table. The scheduler only
// reads it once at startup to build the catalog.
type VendorRepository interface {
	FindAll(ctx context.Context) ([]models.Vendor, error)
	Upsert(ctx context.Context, vendors []models.Vendor) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindAll(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Upsert inserts vendors, updating price, service and days on name conflict.
func (r *vendorRepository) Upsert(ctx context.Context, vendors []models.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"service", "price", "available_days", "updated_at"}),
	}).Create(&vendors).Error
}
