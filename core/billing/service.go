package billing

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
)

type PlanService struct {
	*client.Resource[PlanPago]
}

func NewPlanService(c *client.Client) *PlanService {
	return &PlanService{client.NewResource[PlanPago](c, "/admin/planes-pago")}
}

type registroPago struct {
	Monto     float64 `json:"monto"`
	FechaPago string  `json:"fecha_pago"`
	Token     string  `json:"token"`
}

type mora struct {
	Monto  float64 `json:"monto"`
	Motivo string  `json:"motivo"`
}

type CuotaService struct {
	*client.Resource[Cuota]
}

func NewCuotaService(c *client.Client) *CuotaService {
	return &CuotaService{client.NewResource[Cuota](c, "/admin/cuotas")}
}

// RegisterPayment records a payment against an installment. The token makes
// the call idempotent backend-side; a fresh one is generated when empty.
func (s *CuotaService) RegisterPayment(ctx context.Context, cuotaID int, monto float64, fecha, token string) client.Outcome {
	if monto <= 0 {
		return client.Outcome{Message: "el monto debe ser mayor a cero"}
	}
	if token == "" {
		token = uuid.NewString()
	}
	return s.Do(ctx, cuotaID, "pagos", registroPago{Monto: monto, FechaPago: fecha, Token: token})
}

// ApplyPenalty adds a late-payment surcharge to an installment.
func (s *CuotaService) ApplyPenalty(ctx context.Context, cuotaID int, monto float64, motivo string) client.Outcome {
	if monto <= 0 {
		return client.Outcome{Message: "el monto debe ser mayor a cero"}
	}
	if strings.TrimSpace(motivo) == "" {
		return client.Outcome{Message: "el motivo es obligatorio"}
	}
	return s.Do(ctx, cuotaID, "mora", mora{Monto: monto, Motivo: motivo})
}

type VerificacionService struct {
	*client.Resource[VerificacionPago]
}

func NewVerificacionService(c *client.Client) *VerificacionService {
	return &VerificacionService{client.NewResource[VerificacionPago](c, "/admin/pagos/verificacion")}
}

// Approve accepts a pending payment receipt.
func (s *VerificacionService) Approve(ctx context.Context, id int) client.Outcome {
	return s.Do(ctx, id, "aprobar", nil)
}

// Reject declines a pending receipt; a justification is required.
func (s *VerificacionService) Reject(ctx context.Context, id int, motivo string) client.Outcome {
	if core.CleanString(motivo) == "" {
		return client.Outcome{Message: "el motivo de rechazo es obligatorio"}
	}
	return s.Do(ctx, id, "rechazar", map[string]string{"motivo": motivo})
}
