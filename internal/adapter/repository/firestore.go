package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chillgamer/pkg/errors"
)

// Collection names used by the service.
const (
	reviewsCollection   = "reviews"
	gamesCollection     = "games"
	usersCollection     = "users"
	watchlistCollection = "watchlist"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// mapStoreError converts transport-level failures into the error taxonomy.
// NotFound and AlreadyExists are handled by the callers, which know which
// resource was involved.
func mapStoreError(message string, err error) *errors.AppError {
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return errors.Timeout("Store request timed out", err)
	case codes.Unavailable:
		return errors.Unavailable("Store is unreachable", err)
	}
	return errors.Internal(message, err)
}
