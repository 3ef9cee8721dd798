package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"campus-news-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdUpdateDuplicateReferenceIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "ad_submissions" SET`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uidx_ad_submissions_payment_reference"})

	err := repo.Update(context.Background(), &models.AdSubmission{
		ID:               4,
		Email:            "jane@x.com",
		PaymentReference: "ADV_1700000000000_abcd1234",
	})

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, models.ErrConflict, apiErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}
