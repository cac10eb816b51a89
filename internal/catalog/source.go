package catalog

import (
	"context"
	"fmt"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
)

// VendorSource is anything that can list vendors, such as the postgres
// vendor repository.
type VendorSource interface {
	FindAll(ctx context.Context) ([]models.Vendor, error)
}

// VendorSink stores vendors; used to seed a database from a static catalog.
type VendorSink interface {
	Upsert(ctx context.Context, vendors []models.Vendor) error
}

// FromSource reads every vendor once and freezes them into a Catalog.
func FromSource(ctx context.Context, src VendorSource) (*Catalog, error) {
	vendors, err := src.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	return New(vendors)
}

// Seed writes every vendor in c to sink.
func Seed(ctx context.Context, c *Catalog, sink VendorSink) error {
	if err := sink.Upsert(ctx, c.Vendors()); err != nil {
		return fmt.Errorf("seed vendors: %w", err)
	}
	return nil
}
