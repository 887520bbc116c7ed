package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerModel mirrors the 'customers' table. Email is the natural key
// used for idempotent customer resolution at checkout.
type CustomerModel struct {
	CustomerID int64  `gorm:"primaryKey;autoIncrement"`
	FullName   string `gorm:"type:varchar(255);not null"`
	PhoneNo    string `gorm:"type:varchar(13);not null"`
	Email      string `gorm:"type:varchar(255);unique"`

	Sales    []SaleModel    `gorm:"foreignKey:CustomerID"`
	Payments []PaymentModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// SaleModel mirrors the 'sales' table.
type SaleModel struct {
	SaleID      int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64           `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreatedAt   time.Time

	SaleDetails []SaleDetailModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleDetailModel mirrors the 'sale_details' table. PurchaseAmount is the
// point-in-time line total captured at checkout.
type SaleDetailModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	SaleID         int64           `gorm:"not null"`
	ProductID      int64           `gorm:"not null"`
	Quantity       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	PurchaseAmount decimal.Decimal `gorm:"type:numeric(15,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SaleDetailModel) TableName() string {
	return "sale_details"
}

// PaymentModel mirrors the 'payments' table. Exactly one row per sale.
type PaymentModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	SaleID        int64           `gorm:"not null"`
	CustomerID    int64           `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
