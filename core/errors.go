package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorInputType                 = "PNR_INPUT_TYPE"
	ErrorFormat                    = "PNR_FORMAT_ERROR"
	ErrorIncorrectDate             = "PNR_INCORRECT_DATE"
	ErrorChecksum                  = "PNR_CHECKSUM_ERROR"
	ErrorAgeSeparatorContradiction = "PNR_AGE_SEPARATOR_CONTRADICTION"
	ErrorBackToTheFuture           = "PNR_BACK_TO_THE_FUTURE"
	ErrorInternal                  = "PNR_INTERNAL_ERROR"
)

func inputTypeError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryBadInput, ErrorInputType)
}

func formatError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryBadInput, ErrorFormat)
}

func incorrectDateError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryValidation, ErrorIncorrectDate)
}

func checksumError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryValidation, ErrorChecksum)
}

func contradictionError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryValidation, ErrorAgeSeparatorContradiction)
}

func futureDateError(message string) *goerrors.Error {
	return newValidationError(message, goerrors.CategoryValidation, ErrorBackToTheFuture)
}

func internalError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorInternal)
}

func newValidationError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func defaultErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}
	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = errorHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput:
		return ErrorInputType
	case goerrors.CategoryValidation:
		return ErrorFormat
	default:
		return ErrorInternal
	}
}

func errorHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Reason extracts the PNR text code carried by err, falling back to the
// internal code for anything the mapper could not classify.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && strings.TrimSpace(richErr.TextCode) != "" {
		return richErr.TextCode
	}
	return ErrorInternal
}
