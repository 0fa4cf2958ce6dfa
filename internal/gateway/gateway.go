package gateway

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

// Erros tipados que os handlers traduzem para a resposta HTTP.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUndefinedTable = errors.New("table not found")
)

// UniqueViolationError carrega a constraint violada para a mensagem de conflito.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s", e.Constraint)
}

func IsUniqueViolation(err error) bool {
	var uv *UniqueViolationError
	return errors.As(err, &uv)
}

// Store é o gateway único de acesso à base. Todas as features passam por ele.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Translate converte erros do driver em erros do gateway.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if httperr.IsUniqueViolation(err) {
		return &UniqueViolationError{Constraint: httperr.ConstraintName(err)}
	}
	if httperr.IsUndefinedTable(err) {
		return ErrUndefinedTable
	}
	return err
}

// Query busca linhas com filtros de igualdade e ordenação fixa.
func Query[T any](ctx context.Context, s *Store, filters map[string]any, order string) ([]T, error) {
	q := s.db.WithContext(ctx)
	for field, value := range filters {
		q = q.Where(fmt.Sprintf("%s = ?", field), value)
	}
	if order != "" {
		q = q.Order(order)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		s.log.Error("gateway query failed", zap.Error(err))
		return nil, Translate(err)
	}
	return rows, nil
}

func First[T any](ctx context.Context, s *Store, id uint) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &row, nil
}

func Insert[T any](ctx context.Context, s *Store, row *T) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		s.log.Warn("gateway insert failed", zap.Error(err))
		return Translate(err)
	}
	return nil
}

// Save persiste a linha inteira (padrão de edição: carrega, altera, salva).
func Save[T any](ctx context.Context, s *Store, row *T) error {
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		s.log.Warn("gateway save failed", zap.Error(err))
		return Translate(err)
	}
	return nil
}

func Update[T any](ctx context.Context, s *Store, id uint, patch map[string]any) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, Translate(err)
	}
	if err := s.db.WithContext(ctx).Model(&row).Updates(patch).Error; err != nil {
		s.log.Warn("gateway update failed", zap.Uint("id", id), zap.Error(err))
		return nil, Translate(err)
	}
	return &row, nil
}

func Delete[T any](ctx context.Context, s *Store, id uint) error {
	var row T
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return Translate(err)
	}
	if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
		s.log.Warn("gateway delete failed", zap.Uint("id", id), zap.Error(err))
		return Translate(err)
	}
	return nil
}
