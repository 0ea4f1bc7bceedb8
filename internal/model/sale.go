package model

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentTransfer PaymentMethod = "Transfer"
)

// Sale is immutable once recorded; the only mutation is deletion via void.
type Sale struct {
	ID            string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	Total         float64       `gorm:"not null" json:"total"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	CreatedAt     int64         `gorm:"autoCreateTime:milli" json:"created_at"` // epoch millis

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// SaleItem carries a snapshot of the product's name and prices captured at
// sale time. These are never recomputed from the current Product row:
// historical reports must reflect what was actually charged.
type SaleItem struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SaleID    string `gorm:"type:varchar(36);not null;index" json:"sale_id" validate:"required"`
	ProductID string `gorm:"type:varchar(36);not null" json:"product_id" validate:"required"`

	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity      float64 `gorm:"not null" json:"quantity"`
	UnitPrice     float64 `gorm:"not null" json:"unit_price"`
	UnitCostPrice float64 `gorm:"not null" json:"unit_cost_price"`
}

// SaleLine is one requested line of a sale as supplied by the checkout
// caller, snapshot values included.
type SaleLine struct {
	ProductID     string  `json:"product_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Quantity      float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price"`
	UnitCostPrice float64 `json:"unit_cost_price"`
}

// CreateSaleRequest is the checkout payload. Total is caller-calculated and
// trusted as given.
type CreateSaleRequest struct {
	Items         []SaleLine    `json:"items" validate:"required,min=1,dive"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=Cash Card Transfer"`
}
