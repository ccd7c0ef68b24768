package notification

import "time"

// Table: notificaciones
type Notification struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Recipient string    `gorm:"column:usuario;size:64;index" json:"usuario"`
	Message   string    `gorm:"column:mensaje;type:text" json:"mensaje"`
	Read      bool      `gorm:"column:leido;default:false" json:"leido"`
	CreatedAt time.Time `gorm:"column:creado_en" json:"creado_en"`
}

func (Notification) TableName() string { return "notificaciones" }
