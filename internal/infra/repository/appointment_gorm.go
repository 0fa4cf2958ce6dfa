package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type AppointmentGormRepository struct {
	store *gateway.Store
}

func NewAppointmentGormRepository(store *gateway.Store) *AppointmentGormRepository {
	return &AppointmentGormRepository{store: store}
}

// --------------------------------------------------
// Referências cruzadas
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {
	return gateway.First[models.Client](ctx, r.store, id)
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {
	return gateway.First[models.Professional](ctx, r.store, id)
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {
	return gateway.First[models.Service](ctx, r.store, id)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return gateway.Insert(ctx, r.store, ap)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.store.DB().WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		First(&ap, id).Error
	if err != nil {
		return nil, gateway.Translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return gateway.Save(ctx, r.store, ap)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return gateway.Delete[models.Appointment](ctx, r.store, id)
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.store.DB().WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, gateway.Translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.store.DB().WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Order("date ASC, start_time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, gateway.Translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListBetween(
	ctx context.Context,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.store.DB().WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Where("date >= ? AND date < ?", fromDate, toDate).
		Order("date ASC, start_time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, gateway.Translate(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Client side effects
// --------------------------------------------------

func (r *AppointmentGormRepository) IncrementClientServiceCount(
	ctx context.Context,
	clientID uint,
) error {
	err := r.store.DB().WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		UpdateColumn("service_count", gorm.Expr("service_count + 1")).Error
	return gateway.Translate(err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
