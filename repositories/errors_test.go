package repositories

import (
	"errors"
	"testing"

	"campus-news-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, translate(nil, "missing", "duplicate"))
}

func TestTranslateRecordNotFound(t *testing.T) {
	err := translate(gorm.ErrRecordNotFound, "user not found", "duplicate")

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, models.ErrNotFound, apiErr.Kind)
	assert.Equal(t, "user not found", apiErr.Message)
}

func TestTranslateDuplicateKey(t *testing.T) {
	err := translate(gorm.ErrDuplicatedKey, "missing", "email already registered")

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, models.ErrConflict, apiErr.Kind)
}

func TestTranslatePgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := translate(pgErr, "missing", "email already registered")

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, models.ErrConflict, apiErr.Kind)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestTranslatePassesThroughUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")
	assert.ErrorIs(t, translate(cause, "missing", "duplicate"), cause)
}
