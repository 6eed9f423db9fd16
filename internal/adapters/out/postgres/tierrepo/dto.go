// Package tierrepo persists per-kilo price tiers in the price_tiers table.
package tierrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierDTO represents the database structure for persisting price tiers.
type TierDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_price_tiers_range,priority:1"`
	MinWeight    decimal.Decimal `gorm:"type:numeric(10,3);not null;uniqueIndex:idx_price_tiers_range,priority:2"`
	MaxWeight    decimal.Decimal `gorm:"type:numeric(10,3);not null;uniqueIndex:idx_price_tiers_range,priority:3"`
	PricePerKilo decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for price tiers.
func (TierDTO) TableName() string {
	return "price_tiers"
}

func fromDomain(t *pricing.Tier) TierDTO {
	return TierDTO{
		ID:           t.ID().Bytes(),
		ShopID:       t.ShopID().Bytes(),
		MinWeight:    t.MinWeight(),
		MaxWeight:    t.MaxWeight(),
		PricePerKilo: t.PricePerKilo(),
	}
}

func toDomain(dto TierDTO) (*pricing.Tier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	return pricing.NewTier(id, shopID, dto.MinWeight, dto.MaxWeight, dto.PricePerKilo)
}
