package appointment

import (
	"context"
	"time"

	"github.com/StudioBelezaApps/salon-crm/internal/audit"
	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// ======================================================
// TRANSITIONS (confirm / complete / cancel)
// ======================================================

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionAppointment) Confirm(
	ctx context.Context,
	id uint,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusConfirmed)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatch(actorID, "appointment_confirmed", ap.ID)
	return ap, nil
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	id uint,
	actorID uint,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCompleted)
	ap.CompletedAt = &now
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Contador de serviços do cliente alimenta o relatório de fidelidade.
	if err := uc.repo.IncrementClientServiceCount(ctx, ap.ClientID); err != nil {
		return nil, err
	}

	uc.dispatch(actorID, "appointment_completed", ap.ID)
	return ap, nil
}

func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	id uint,
	actorID uint,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatch(actorID, "appointment_cancelled", ap.ID)
	return ap, nil
}

func (uc *TransitionAppointment) dispatch(actorID uint, action string, entityID uint) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &entityID,
	})
}
