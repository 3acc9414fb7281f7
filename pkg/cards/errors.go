package cards

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Abbreviation errors
	ErrAbbreviationEmpty    ErrorCode = "ABBREVIATION_EMPTY"
	ErrAbbreviationTooShort ErrorCode = "ABBREVIATION_TOO_SHORT"
	ErrAbbreviationTooLong  ErrorCode = "ABBREVIATION_TOO_LONG"

	// Color errors
	ErrUnknownColorLetter ErrorCode = "UNKNOWN_COLOR_LETTER"
	ErrUnknownColorName   ErrorCode = "UNKNOWN_COLOR_NAME"
	ErrInvalidColor       ErrorCode = "INVALID_COLOR"

	// Rank errors
	ErrRankEmpty      ErrorCode = "RANK_EMPTY"
	ErrRankNotInteger ErrorCode = "RANK_NOT_INTEGER"
	ErrRankOutOfRange ErrorCode = "RANK_OUT_OF_RANGE"

	// Configuration errors
	ErrColorSetInvalid ErrorCode = "COLOR_SET_INVALID"
)

// CardError represents a card parsing or construction error
type CardError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CardError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether the error indicates a malformed color set
// rather than bad caller input. Configuration errors are not recoverable by
// retrying with different input.
func (e *CardError) IsConfiguration() bool {
	return e.Code == ErrColorSetInvalid
}

// NewCardError creates a new CardError
func NewCardError(code ErrorCode, message string) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a CardError
func WrapError(code ErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCardError checks if an error is a CardError and has a specific code
func IsCardError(err error, code ErrorCode) bool {
	var cardErr *CardError
	if err == nil {
		return false
	}
	if ok := As(err, &cardErr); !ok {
		return false
	}
	return cardErr.Code == code
}

// As is a helper function to safely type assert an error to a CardError
func As(err error, target **CardError) bool {
	if target == nil {
		return false
	}
	if cardErr, ok := err.(*CardError); ok {
		*target = cardErr
		return true
	}
	return false
}
