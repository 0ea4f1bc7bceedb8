package model

type Product struct {
	BaseModel
	SKU      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category string `gorm:"type:varchar(100)" json:"category"`

	// Stock is a real number: fractional units (half a pack) are valid.
	Stock float64 `gorm:"default:0" json:"stock"`
	Unit  string  `gorm:"type:varchar(20)" json:"unit"`

	UnitPrice        float64  `gorm:"default:0" json:"unit_price"`
	HalfUnitPrice    *float64 `json:"half_unit_price,omitempty"`
	QuarterUnitPrice *float64 `json:"quarter_unit_price,omitempty"`
	CostPrice        float64  `gorm:"default:0" json:"cost_price"`

	Archived bool `gorm:"default:false" json:"archived"`
}
