package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
)

// pipeline error kinds, match them with errors.Is
var (
	ErrValidation        = errors.New("validation error")
	ErrPinning           = errors.New("pinning error")
	ErrChainSubmission   = errors.New("chain submission error")
	ErrChainConfirmation = errors.New("chain confirmation error")
	ErrParse             = errors.New("parse error")
	ErrPrecondition      = errors.New("precondition error")
	ErrAlreadyInProgress = errors.New("already in progress")
)

// PipelineError tags a failure of the asset pipeline with its kind.
// The text of Cause is kept verbatim at the end of Error().
type PipelineError struct {
	Kind  error
	Msg   string
	Cause error
}

func NewPipelineError(kind error, msg string, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Msg: msg, Cause: cause}
}

func NewValidationError(msg string) *PipelineError {
	return NewPipelineError(ErrValidation, msg, nil)
}

func NewPreconditionError(msg string) *PipelineError {
	return NewPipelineError(ErrPrecondition, msg, nil)
}

func (e *PipelineError) Error() string {
	s := e.Kind.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func (e *PipelineError) Is(target error) bool {
	return target == e.Kind
}

// KindOf returns the pipeline kind of err, nil when err carries none
func KindOf(err error) error {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	return nil
}
