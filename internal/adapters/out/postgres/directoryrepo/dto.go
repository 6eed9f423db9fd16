// Package directoryrepo reads customers, shops and service prices from the
// users, shops and shop_services tables owned by the account and catalog
// services. It never writes them.
package directoryrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserDTO maps the columns of users read by this service.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(32)"`
}

func (UserDTO) TableName() string {
	return "users"
}

// ShopDTO maps the columns of shops read by this service.
type ShopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopName string    `gorm:"type:varchar(255)"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

// ShopServiceDTO is one priced service of a shop's catalog.
type ShopServiceDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceName string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ShopServiceDTO) TableName() string {
	return "shop_services"
}

// Models lists the tables read by this package.
func Models() []any {
	return []any{&UserDTO{}, &ShopDTO{}, &ShopServiceDTO{}}
}
