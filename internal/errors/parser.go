package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified form of a storage-layer error
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

// ParseError classifies an error into a response code without leaking
// driver internals to the client. The context string names the operation
// for the not-found/conflict messages.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "an internal error occurred",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Status:  http.StatusNotFound,
			Code:    ResourceNotFound,
			Message: context + " not found",
		}
	}

	errStr := strings.ToLower(err.Error())

	// SQLite constraint errors; message forms per mattn/go-sqlite3
	if strings.Contains(errStr, "unique constraint failed") {
		return ErrorInfo{
			Status:  http.StatusConflict,
			Code:    ResourceAlreadyExists,
			Message: context + " already exists",
		}
	}
	if strings.Contains(errStr, "foreign key constraint failed") {
		return ErrorInfo{
			Status:  http.StatusBadRequest,
			Code:    ValidationInvalidID,
			Message: "referenced record does not exist",
		}
	}
	if strings.Contains(errStr, "not null constraint failed") {
		return ErrorInfo{
			Status:  http.StatusBadRequest,
			Code:    ValidationRequired,
			Message: "a required field is missing",
		}
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalDatabaseError,
		Message: "a database error occurred",
	}
}
