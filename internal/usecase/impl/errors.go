package impl

import (
	"strings"

	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/repository"
	"spotshare/internal/errors"

	"github.com/go-playground/validator/v10"
)

// mapGatewayError converts a collaborator failure into an AppError.
// AppErrors pass through; permission denials become ErrPermissionDenied;
// everything else is a transient GatewayError carrying the collaborator message.
func mapGatewayError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, repository.ErrPermissionDenied) {
		return domainerrors.ErrPermissionDenied.WrapMessage(operation)
	}
	if errors.Is(err, repository.ErrListingNotFound) {
		return domainerrors.ErrListingNotFound.WrapMessage(operation)
	}

	return domainerrors.NewGatewayError(err, operation)
}

// validationError flattens validator errors into a single ErrValidationFailed.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Namespace()+" failed on "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}
