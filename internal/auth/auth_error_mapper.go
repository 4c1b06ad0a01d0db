package auth

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	autherrors "github.com/Kizito57/leave-management-system/internal/auth/errors"
)

// mapRepositoryError translates driver-level failures into domain errors.
// 23505 is the Postgres unique_violation class; on users it can only be the
// email index.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
