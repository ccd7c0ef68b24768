package coderequest

import (
	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	Description string
	Price       decimal.Decimal
	Supplier    string
}

// Notification texts delivered to the submitter.
const (
	msgSubmitted = "Solicitud enviada (pendiente de aprobación)."
	msgApproved  = "Tu código %s fue aprobado."
	msgRejected  = "Tu solicitud %d fue rechazada. Motivo: %s"
)
