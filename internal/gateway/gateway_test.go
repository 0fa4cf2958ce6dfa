package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("registro inexistente", func(t *testing.T) {
		err := Translate(gorm.ErrRecordNotFound)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("violação de unique vira erro tipado com a constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_slot"}
		err := Translate(fmt.Errorf("create failed: %w", pgErr))

		require.True(t, IsUniqueViolation(err))

		var uv *UniqueViolationError
		require.ErrorAs(t, err, &uv)
		require.Equal(t, "idx_appointments_slot", uv.Constraint)
	})

	t.Run("tabela inexistente", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01"}
		err := Translate(pgErr)
		require.ErrorIs(t, err, ErrUndefinedTable)
	})

	t.Run("erro desconhecido passa intacto", func(t *testing.T) {
		cause := errors.New("connection reset")
		require.Equal(t, cause, Translate(cause))
	})

	t.Run("nil continua nil", func(t *testing.T) {
		require.NoError(t, Translate(nil))
	})
}
