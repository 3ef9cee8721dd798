package repositories

import (
	"errors"

	"campus-news-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translate maps store-level failures to API error kinds at the gateway
// boundary. Anything unrecognized passes through and surfaces as an internal
// error at the response formatter.
func translate(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFound(notFoundMsg)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Conflict(conflictMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return models.Conflict(conflictMsg)
	}

	return err
}
