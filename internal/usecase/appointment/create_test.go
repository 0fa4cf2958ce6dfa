package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StudioBelezaApps/salon-crm/internal/audit"
	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	mu sync.Mutex

	clients       map[uint]*models.Client
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	appointments  map[uint]*models.Appointment

	nextID     uint
	insertErr  error
	increments []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:       map[uint]*models.Client{1: {ID: 1, Name: "Ana Silva"}},
		professionals: map[uint]*models.Professional{1: {ID: 1, Name: "Mariana Santos"}},
		services:      map[uint]*models.Service{1: {ID: 1, Name: "Corte", DurationMin: 30}},
		appointments:  map[uint]*models.Appointment{},
		nextID:        1,
	}
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, gateway.ErrNotFound
}

func (r *fakeRepo) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	if p, ok := r.professionals[id]; ok {
		return p, nil
	}
	return nil, gateway.ErrNotFound
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, gateway.ErrNotFound
}

func (r *fakeRepo) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	for _, existing := range r.appointments {
		if existing.Date == ap.Date && existing.StartTime == ap.StartTime {
			return &gateway.UniqueViolationError{Constraint: "idx_appointments_slot"}
		}
	}
	ap.ID = r.nextID
	r.nextID++
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		copied := *ap
		return &copied, nil
	}
	return nil, gateway.ErrNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return gateway.ErrNotFound
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return gateway.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListForDay(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListBetween(_ context.Context, fromDate, toDate string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= fromDate && ap.Date <= toDate {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) IncrementClientServiceCount(_ context.Context, clientID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.increments = append(r.increments, clientID)
	if c, ok := r.clients[clientID]; ok {
		c.ServiceCount++
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeSink struct{}

func (fakeSink) Log(_ *uint, _ string, _ string, _ *uint, _ any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(fakeSink{}, zap.NewNop())
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	newUC := func(repo *fakeRepo) *CreateAppointment {
		return NewCreateAppointment(repo, NewStoreSubmitter(repo), newTestDispatcher())
	}

	t.Run("calcula o fim pela duração do serviço", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newUC(repo)

		ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID:       1,
			ProfessionalID: 1,
			ServiceID:      1,
			Date:           "2026-09-01",
			StartTime:      "10:00",
			ActorID:        7,
		})
		require.NoError(t, err)
		require.Equal(t, "10:00:00", ap.StartTime)
		require.Equal(t, "10:30:00", ap.EndTime)
		require.Equal(t, "scheduled", ap.Status)
		require.NotZero(t, ap.ID)
	})

	t.Run("campos ausentes", func(t *testing.T) {
		uc := newUC(newFakeRepo())

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{ClientID: 1})
		require.True(t, httperr.IsBusiness(err, "missing_required_fields"))
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		uc := newUC(newFakeRepo())

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ClientID:       99,
			ProfessionalID: 1,
			ServiceID:      1,
			Date:           "2026-09-01",
			StartTime:      "10:00",
		})
		require.True(t, httperr.IsBusiness(err, "client_not_found"))
	})

	t.Run("slot ocupado devolve conflito distinto", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newUC(repo)

		in := CreateAppointmentInput{
			ClientID:       1,
			ProfessionalID: 1,
			ServiceID:      1,
			Date:           "2026-09-01",
			StartTime:      "10:00",
		}

		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), in)
		require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
		require.False(t, httperr.IsBusiness(err, "invalid_request"))
	})

	t.Run("horários equivalentes normalizam para o mesmo slot", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newUC(repo)

		first := CreateAppointmentInput{
			ClientID: 1, ProfessionalID: 1, ServiceID: 1,
			Date: "2026-09-01", StartTime: "10:00",
		}
		second := first
		second.StartTime = "10:00:00"

		_, err := uc.Execute(context.Background(), first)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), second)
		require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	})
}
