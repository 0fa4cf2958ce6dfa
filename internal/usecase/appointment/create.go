package appointment

import (
	"context"

	"github.com/StudioBelezaApps/salon-crm/internal/audit"
	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint
	ServiceID      uint

	Date      string
	StartTime string
	Notes     string

	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	submitter Submitter
	audit     *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	submitter Submitter,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		submitter: submitter,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Presença dos campos obrigatórios
	// --------------------------------------------------
	if in.ClientID == 0 || in.ProfessionalID == 0 || in.ServiceID == 0 ||
		in.Date == "" || in.StartTime == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.NormalizeTime(in.StartTime)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Referências cruzadas
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		if err == gateway.ErrNotFound {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
		if err == gateway.ErrNotFound {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if err == gateway.ErrNotFound {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3. end_time = start_time + duração do serviço
	// --------------------------------------------------
	end, err := domain.ComputeEnd(start, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Registro composto, aplicado pela estratégia
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:       client.ID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      service.ID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	id, err := uc.submitter.Submit(ctx, ap)
	if err != nil {
		return nil, err
	}
	ap.ID = id

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
