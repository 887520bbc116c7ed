package model

import (
	"github.com/shopspring/decimal"
)

// CouponModel mirrors the 'coupons' table. Codes are stored upper-case.
type CouponModel struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Code     string          `gorm:"type:varchar(50);unique;not null"`
	Discount decimal.Decimal `gorm:"type:numeric(15,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
