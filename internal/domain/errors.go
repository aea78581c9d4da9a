package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; every typed error below matches exactly one of them.
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrAPIRequest      = errors.New("api request error")
	ErrLabelGeneration = errors.New("label generation error")
)

// ConfigurationError reports missing or empty API credentials.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// APIRequestError reports a transport-level failure talking to the Easy Delivery API.
type APIRequestError struct {
	StatusCode int // zero when no response was received
	Err        error
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("API Request Failed: %v", e.Err)
}

func (e *APIRequestError) Unwrap() error { return e.Err }

func (e *APIRequestError) Is(target error) bool { return target == ErrAPIRequest }

// LabelGenerationError reports that the API refused to produce a label or
// answered with a payload that carries no usable label.
type LabelGenerationError struct {
	Type    string
	Message string
	// Detail is a decoding problem hidden behind the defaults. It is not part
	// of Error().
	Detail error
}

func (e *LabelGenerationError) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return e.Type + ": " + e.Message
}

func (e *LabelGenerationError) Is(target error) bool { return target == ErrLabelGeneration }

// MissingCredentialsMessage is shown to the operator when either parameter is unset.
const MissingCredentialsMessage = "Easy Delivery API credentials are not configured. Please set them in system parameters."

// NoLabelDataMessage is returned when a success response has neither a PDF nor ZPL labels.
const NoLabelDataMessage = "No PDF or ZPL labels found in the API response."
