package product

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"multisuministros-codes/internal/domain/errs"
)

var (
	ErrNotFound      = fmt.Errorf("product not found: %w", errs.ErrNotFound)
	ErrDuplicateCode = fmt.Errorf("product code already registered: %w", errs.ErrConflict)
)

// StandardTaxRate is the IVA percentage stamped on every approved product.
var StandardTaxRate = decimal.NewFromInt(13)

// Table: productos
type Product struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Code        string          `gorm:"column:codigo;size:64;not null;uniqueIndex:ux_productos_codigo" json:"codigo"`
	Description string          `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:decimal(14,2)" json:"precio"`
	TaxRate     decimal.Decimal `gorm:"column:impuesto;type:decimal(5,2)" json:"impuesto"`
	Supplier    string          `gorm:"column:proveedor;size:255" json:"proveedor"`
	CreatedBy   string          `gorm:"column:creado_por;size:64" json:"creado_por"`
	CreatedAt   time.Time       `gorm:"column:creado_en" json:"creado_en"`
}

func (Product) TableName() string { return "productos" }
