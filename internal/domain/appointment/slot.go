package appointment

import (
	"fmt"
	"time"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

// Slot é o par (date, start_time) que um agendamento ocupa.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// NormalizeTime aceita "HH:mm" ou "HH:mm:ss" e devolve "HH:mm:00".
func NormalizeTime(s string) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		if t, err = time.Parse("15:04:05", s); err != nil {
			return "", httperr.ErrBusiness("invalid_time")
		}
	}
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// NormalizeDate valida o formato YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format("2006-01-02"), nil
}

// ComputeEnd soma a duração do serviço ao horário de início, em minutos.
// O resultado fica na granularidade HH:mm:00; passa da meia-noite com wrap.
func ComputeEnd(start string, durationMin int) (string, error) {
	normalized, err := NormalizeTime(start)
	if err != nil {
		return "", err
	}
	if durationMin <= 0 {
		return "", httperr.ErrBusiness("invalid_duration")
	}

	t, _ := time.Parse("15:04:05", normalized)
	total := (t.Hour()*60 + t.Minute() + durationMin) % (24 * 60)
	return fmt.Sprintf("%02d:%02d:00", total/60, total%60), nil
}
