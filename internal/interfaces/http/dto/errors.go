package dto

import "net/http"

// Error codes surfaced by the API. The set is closed: handlers only emit
// codes from this list and clients dispatch on them.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeBadRequest is used for malformed or illegal requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeConflict is used when the request contradicts stored state
	ErrCodeConflict = "CONFLICT"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeUnknownCountry is used when a region maps to no known country
	ErrCodeUnknownCountry = "UNKNOWN_COUNTRY"
	// ErrCodeUnprocessableCombination is used when case attributes fall
	// outside the questionnaire type decision table
	ErrCodeUnprocessableCombination = "UNPROCESSABLE_COMBINATION"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Codes issued by domain validation all map to 400; stored-state conflicts
// to 409; decision-table misses to 422.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeUnknownCountry:   http.StatusBadRequest,
	"INVALID_QID":           http.StatusBadRequest,
	"INVALID_UAC":           http.StatusBadRequest,
	"INVALID_CASE_TYPE":     http.StatusBadRequest,
	"INVALID_ADDRESS_LEVEL": http.StatusBadRequest,
	"INVALID_REGION":        http.StatusBadRequest,
	"INVALID_CASE_REF":      http.StatusBadRequest,

	ErrCodeConflict:      http.StatusConflict,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeUnprocessableCombination: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500 so a missing mapping can never mask a
// failure as success.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
