package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// ======================================================
// SUBMITTER (estratégia em dois passos)
// ======================================================

// Submitter aplica o registro composto do agendamento em algum transporte.
// Todo caminho devolve o mesmo contrato: id criado ou erro de negócio.
type Submitter interface {
	Submit(ctx context.Context, ap *models.Appointment) (uint, error)
}

// ErrSlotTaken distingue conflito de slot de falha genérica.
func ErrSlotTaken() error {
	return httperr.ErrBusiness("slot_already_booked")
}

// ------------------------------------------------------
// Transporte primário: endpoint HTTP de agendamentos
// ------------------------------------------------------

type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type submitPayload struct {
	ClientID       uint   `json:"client_id"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceID      uint   `json:"service_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

type submitResult struct {
	Success bool `json:"success"`
	Data    struct {
		ID uint `json:"id"`
	} `json:"data"`
}

func (s *HTTPSubmitter) Submit(ctx context.Context, ap *models.Appointment) (uint, error) {
	body, err := json.Marshal(submitPayload{
		ClientID:       ap.ClientID,
		ProfessionalID: ap.ProfessionalID,
		ServiceID:      ap.ServiceID,
		Date:           ap.Date,
		StartTime:      ap.StartTime,
		EndTime:        ap.EndTime,
		Status:         ap.Status,
		Notes:          ap.Notes,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var out submitResult
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return 0, err
		}
		return out.Data.ID, nil
	case http.StatusConflict:
		return 0, ErrSlotTaken()
	case http.StatusBadRequest:
		return 0, httperr.ErrBusiness("invalid_request")
	default:
		return 0, fmt.Errorf("appointment endpoint returned status %d", resp.StatusCode)
	}
}

// ------------------------------------------------------
// Transporte de fallback: insert direto via gateway
// ------------------------------------------------------

type StoreSubmitter struct {
	repo domain.Repository
}

func NewStoreSubmitter(repo domain.Repository) *StoreSubmitter {
	return &StoreSubmitter{repo: repo}
}

func (s *StoreSubmitter) Submit(ctx context.Context, ap *models.Appointment) (uint, error) {
	if err := s.repo.InsertAppointment(ctx, ap); err != nil {
		if gateway.IsUniqueViolation(err) {
			return 0, ErrSlotTaken()
		}
		return 0, err
	}
	return ap.ID, nil
}

// ------------------------------------------------------
// Estratégia: primário, depois fallback
// ------------------------------------------------------

// TwoStepSubmitter tenta o transporte primário e, em qualquer falha, repete o
// mesmo registro no fallback. O conflito de slot reaparece de forma idêntica
// no fallback, então o resultado final é consistente nos dois caminhos.
type TwoStepSubmitter struct {
	primary  Submitter
	fallback Submitter
	log      *zap.Logger
}

func NewTwoStepSubmitter(primary, fallback Submitter, log *zap.Logger) *TwoStepSubmitter {
	return &TwoStepSubmitter{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

func (s *TwoStepSubmitter) Submit(ctx context.Context, ap *models.Appointment) (uint, error) {
	if s.primary != nil {
		id, err := s.primary.Submit(ctx, ap)
		if err == nil {
			return id, nil
		}
		s.log.Warn("primary appointment transport failed, using fallback", zap.Error(err))
	}
	return s.fallback.Submit(ctx, ap)
}
