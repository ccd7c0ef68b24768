package setting

import (
	"fmt"

	"multisuministros-codes/internal/domain/errs"
)

const (
	KeyPriceTolerance     = "tolerancia_precio_pct"
	DefaultPriceTolerance = "0.02"
)

var ErrNotFound = fmt.Errorf("setting not found: %w", errs.ErrNotFound)

// Table: settings
type Setting struct {
	Key   string `gorm:"column:key;primaryKey;size:64" json:"key"`
	Value string `gorm:"column:value;type:text" json:"value"`
}

func (Setting) TableName() string { return "settings" }
