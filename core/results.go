package core

// OperationError carries a stable, machine-readable error code describing
// why an operation failed.
type OperationError struct {
	Code string `json:"code"`
}

type operationStatus string

const (
	statusSuccess operationStatus = "success"
	statusFailure operationStatus = "failure"
)

// OperationResult is the uniform outcome type used across the core:
// either a success carrying data, or a failure carrying an ordered list of
// error codes plus optional partial data. Components communicate outcome to
// callers exclusively through this type - raw faults never cross component
// boundaries.
type OperationResult[T any] struct {
	status operationStatus
	data   T
	errors []OperationError
}

// SuccessResult creates a successful result carrying data.
func SuccessResult[T any](data T) OperationResult[T] {
	return OperationResult[T]{status: statusSuccess, data: data}
}

// FailureResult creates a failed result carrying the given error codes.
func FailureResult[T any](errs ...OperationError) OperationResult[T] {
	return OperationResult[T]{status: statusFailure, errors: errs}
}

// FailureResultWithData creates a failed result that still carries partial data.
func FailureResultWithData[T any](data T, errs ...OperationError) OperationResult[T] {
	return OperationResult[T]{status: statusFailure, data: data, errors: errs}
}

func (r OperationResult[T]) IsSuccess() bool {
	return r.status == statusSuccess
}

func (r OperationResult[T]) IsFailure() bool {
	return r.status == statusFailure
}

// Data returns the carried payload. For failures this is the partial data,
// which may be the zero value.
func (r OperationResult[T]) Data() T {
	return r.data
}

// Errors returns the ordered error codes of a failed result.
func (r OperationResult[T]) Errors() []OperationError {
	return r.errors
}

// ErrorCodes returns just the code strings, in order.
func (r OperationResult[T]) ErrorCodes() []string {
	codes := make([]string, 0, len(r.errors))
	for _, e := range r.errors {
		codes = append(codes, e.Code)
	}
	return codes
}
