package billing

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Payment verification states as the backend reports them.
const (
	VerificacionPendiente = "pendiente"
	VerificacionAprobada  = "aprobada"
	VerificacionRechazada = "rechazada"
)

// Pago is a single registered payment against an installment.
type Pago struct {
	ID         int         `json:"id"`
	Monto      float64     `json:"monto"`
	FechaPago  time.Time   `json:"fecha_pago"`
	Metodo     string      `json:"metodo"`
	Referencia null.String `json:"referencia,omitempty"`
}

// Cuota is one installment of a payment plan. SaldoPendiente is derived
// server-side (monto - monto_pagado) and is never mutated locally.
type Cuota struct {
	ID             int          `json:"id"`
	Numero         int          `json:"numero"`
	Monto          float64      `json:"monto"`
	MontoPagado    float64      `json:"monto_pagado"`
	SaldoPendiente float64      `json:"saldo_pendiente"`
	FechaFin       time.Time    `json:"fecha_fin"`
	EstaVencida    bool         `json:"esta_vencida"`
	MontoMora      null.Float64 `json:"monto_mora,omitempty"`
	Pagos          []Pago       `json:"pagos"`
}

// Pagada reports whether the installment is fully covered.
func (c Cuota) Pagada() bool { return c.SaldoPendiente <= 0 }

// PlanPago is a student's payment plan with its installments.
type PlanPago struct {
	ID           int     `json:"id"`
	EstudianteID int     `json:"estudiante_id"`
	Estudiante   string  `json:"estudiante,omitempty"`
	Gestion      string  `json:"gestion"`
	MontoTotal   float64 `json:"monto_total"`
	Cuotas       []Cuota `json:"cuotas"`
}

// VerificacionPago is a payment receipt awaiting admin review.
type VerificacionPago struct {
	ID              int         `json:"id"`
	CuotaID         int         `json:"cuota_id"`
	Estudiante      string      `json:"estudiante"`
	Monto           float64     `json:"monto"`
	Estado          string      `json:"estado"`
	ComprobantePath string      `json:"comprobante_path"`
	Observaciones   null.String `json:"observaciones,omitempty"`
	FechaEnvio      time.Time   `json:"fecha_envio"`
}

// Pendiente reports whether the verification still exposes approve/reject.
func (v VerificacionPago) Pendiente() bool { return v.Estado == VerificacionPendiente }
