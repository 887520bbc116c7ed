// Package model contains the GORM persistence models mirroring the shop
// schema. They are mapped to and from domain entities by the repositories.
package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Prices and stock are
// NUMERIC(15,2); stock is decimal because fractional units are sold.
type ProductModel struct {
	ProductID     int64           `gorm:"primaryKey;autoIncrement"`
	ProductName   string          `gorm:"type:varchar(255);not null"`
	BuyingPrice   decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	StockQuantity decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Image         string          `gorm:"type:varchar(255)"`
	Category      string          `gorm:"type:varchar(50)"`
	Rating        float64
	Description   string `gorm:"type:text"`

	SaleDetails []SaleDetailModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
