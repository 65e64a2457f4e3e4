package docval

import (
	"context"
	"unicode/utf8"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
)

// MinRejectReasonLen is the minimum justification length for a rejection.
// The backend re-validates; this gate just keeps short reasons off the wire.
const MinRejectReasonLen = 10

type Service struct {
	*client.Resource[Documento]
}

func NewService(c *client.Client) *Service {
	return &Service{client.NewResource[Documento](c, "/admin/documentos")}
}

// Approve accepts a pending document. No justification is required.
func (s *Service) Approve(ctx context.Context, id int) client.Outcome {
	return s.Do(ctx, id, "aprobar", nil)
}

// Reject declines a pending document. Reasons shorter than
// MinRejectReasonLen never issue a network call.
func (s *Service) Reject(ctx context.Context, id int, motivo string) client.Outcome {
	motivo = core.CleanString(motivo)
	if utf8.RuneCountInString(motivo) < MinRejectReasonLen {
		return client.Outcome{
			Message: "el motivo de rechazo debe tener al menos 10 caracteres",
			Errors:  client.FieldErrors{"motivo": {"el motivo de rechazo debe tener al menos 10 caracteres"}},
		}
	}
	return s.Do(ctx, id, "rechazar", map[string]string{"motivo": motivo})
}
