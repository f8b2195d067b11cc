package firestoredb

import (
	"context"

	"spotshare/internal/domain/repository"
	"spotshare/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError converts a Firestore status into the repository sentinels.
// notFound is the sentinel of the calling repository; nil keeps NotFound as is.
func mapError(err error, notFound error, message string) error {
	if err == nil {
		return nil
	}

	switch status.Code(errors.Cause(err)) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return errors.Wrap(repository.ErrPermissionDenied, message)
	case codes.NotFound:
		if notFound != nil {
			return errors.Wrap(notFound, message)
		}
	}

	return errors.Wrap(err, message)
}

// isCanceled reports whether the error ends a feed rather than interrupting it.
func isCanceled(err error) bool {
	code := status.Code(errors.Cause(err))

	return code == codes.Canceled || errors.Is(err, context.Canceled)
}
