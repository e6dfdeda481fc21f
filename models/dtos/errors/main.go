package errors

import (
	"net/http"
	"time"

	"github.com/lithium3141/HaplotypeInference/models/dtos"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

// -- Simplest: 1 error with message
func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadRequest, message)
}
func CreateSimpleRequestEntityTooLarge(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusRequestEntityTooLarge, message)
}
func CreateSimpleUnprocessableEntity(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusUnprocessableEntity, message)
}
func CreateSimpleServiceUnavailable(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusServiceUnavailable, message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusInternalServerError, message)
}

func createSimple(code int, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   http.StatusText(code),
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

// --
