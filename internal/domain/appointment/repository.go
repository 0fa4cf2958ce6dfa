package appointment

import (
	"context"

	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type Repository interface {
	// -------- Referências cruzadas --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagens --------
	ListForDay(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListBetween(
		ctx context.Context,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// -------- Client side effects --------
	IncrementClientServiceCount(
		ctx context.Context,
		clientID uint,
	) error
}
