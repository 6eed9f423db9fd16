package directoryrepo

import (
	"context"
	"time"

	"laundry/internal/adapters/out/postgres/storeerr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	_ ports.CustomerDirectory = (*GormDirectory)(nil)
	_ ports.ShopDirectory     = (*GormDirectory)(nil)
	_ ports.CatalogPrices     = (*GormDirectory)(nil)
)

// GormDirectory implements the read-only collaborator ports over GORM.
// Every lookup is bounded by timeout.
type GormDirectory struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormDirectory creates a directory reading through db.
func NewGormDirectory(db *gorm.DB, timeout time.Duration) *GormDirectory {
	return &GormDirectory{db: db, timeout: timeout}
}

// Customer returns the customer with the given id.
func (d *GormDirectory) Customer(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	if err := id.Validate(); err != nil {
		return ports.Customer{}, err
	}
	ctx, cancel := d.bounded(ctx)
	defer cancel()

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return ports.Customer{}, storeerr.NotFound("load customer", "customer", id.String(), err)
	}

	return ports.Customer{ID: id, Name: dto.Name, Email: dto.Email, Phone: dto.Phone}, nil
}

// Shop returns the shop with the given id.
func (d *GormDirectory) Shop(ctx context.Context, id kernel.UUID) (ports.Shop, error) {
	if err := id.Validate(); err != nil {
		return ports.Shop{}, err
	}
	ctx, cancel := d.bounded(ctx)
	defer cancel()

	var dto ShopDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return ports.Shop{}, storeerr.NotFound("load shop", "shop", id.String(), err)
	}

	return ports.Shop{ID: id, Name: dto.ShopName}, nil
}

// ServicePrice returns the catalog price of the named service of a shop.
func (d *GormDirectory) ServicePrice(ctx context.Context, shopID kernel.UUID, serviceName string) (decimal.Decimal, error) {
	if err := shopID.Validate(); err != nil {
		return decimal.Zero, err
	}
	ctx, cancel := d.bounded(ctx)
	defer cancel()

	var dto ShopServiceDTO
	err := d.db.WithContext(ctx).
		Where("shop_id = ? AND service_name = ?", shopID.Bytes(), serviceName).
		First(&dto).Error
	if err != nil {
		return decimal.Zero, storeerr.NotFound("load service price", "service", serviceName, err)
	}

	return dto.Price, nil
}

func (d *GormDirectory) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
