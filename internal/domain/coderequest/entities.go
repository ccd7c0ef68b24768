package coderequest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"multisuministros-codes/internal/domain/errs"
)

var (
	ErrNotFound          = fmt.Errorf("code request not found: %w", errs.ErrNotFound)
	ErrInvalidTransition = fmt.Errorf("code request is not pending: %w", errs.ErrInvalidTransition)
)

type Status string

// Stored values match the rows already present in the solicitudes table.
const (
	StatusPending  Status = "Pendiente"
	StatusApproved Status = "Aprobada"
	StatusRejected Status = "Rechazada"
)

// VerificationPlaceholder is written to motivo_ia on every new request; no
// automated verification runs.
const VerificationPlaceholder = "Sin verificación"

// Table: solicitudes
type CodeRequest struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description  string          `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price        decimal.Decimal `gorm:"column:precio_ingresado;type:decimal(14,2)" json:"precio_ingresado"`
	Supplier     string          `gorm:"column:proveedor;size:255" json:"proveedor"`
	Submitter    string          `gorm:"column:vendedor;size:64;index" json:"vendedor"`
	Status       Status          `gorm:"column:estado;size:16;index" json:"estado"`
	Note         string          `gorm:"column:motivo_ia;type:text" json:"motivo_ia"`
	CreatedAt    time.Time       `gorm:"column:creado_en" json:"creado_en"`
	ApprovedBy   *string         `gorm:"column:aprobado_por;size:64" json:"aprobado_por"`
	ApprovedAt   *time.Time      `gorm:"column:aprobado_en" json:"aprobado_en"`
	AssignedCode *string         `gorm:"column:codigo_asignado;size:64" json:"codigo_asignado"`
}

func (CodeRequest) TableName() string { return "solicitudes" }

// Transition is the set of columns written when a pending request is decided.
// AssignedCode is nil for rejections.
type Transition struct {
	To           Status
	By           string
	At           time.Time
	AssignedCode *string
}
