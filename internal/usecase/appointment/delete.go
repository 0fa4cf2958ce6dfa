package appointment

import (
	"context"

	"github.com/StudioBelezaApps/salon-crm/internal/audit"
	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento. Id inexistente devolve ErrNotFound do
// gateway, nunca pânico.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})
	return nil
}
