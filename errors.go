package sqlward

import "fmt"

// Kind is the closed set of structured error kinds a caller can observe.
// Values mirror lib/pq's Efatal/Epanic/... constant style in error.go,
// generalized from backend severities to the driver's own taxonomy.
type Kind string

const (
	KindInvalidInput                          Kind = "InvalidInput"
	KindBackendTerminated                     Kind = "BackendTerminated"
	KindStatementCancelled                    Kind = "StatementCancelled"
	KindStatementTimeout                      Kind = "StatementTimeout"
	KindNotNullIntegrityConstraintViolation    Kind = "NotNullIntegrityConstraintViolation"
	KindForeignKeyIntegrityConstraintViolation Kind = "ForeignKeyIntegrityConstraintViolation"
	KindUniqueIntegrityConstraintViolation     Kind = "UniqueIntegrityConstraintViolation"
	KindCheckIntegrityConstraintViolation      Kind = "CheckIntegrityConstraintViolation"
	KindInputSyntax                           Kind = "InputSyntax"
	KindNotFound                               Kind = "NotFound"
	KindDataIntegrity                          Kind = "DataIntegrity"
)

// DriverError is the error type this package raises for mapped backend
// errors, shape-method violations and the COPY rejection. Backend errors
// with no mapped code pass through unchanged, and failures outside the
// backend (such as DSN parsing in NewConnection) are returned as ordinary
// wrapped errors. Cause holds the raw backend error for kinds mapped from
// one; it is nil for NotFound and DataIntegrity, which are
// shape-layer-only and correlate via QueryId instead, and for the COPY
// rejection.
type DriverError struct {
	Kind    Kind
	Message string
	SQL     string // set for InputSyntax and for the COPY rejection
	Values  []any  // set for InputSyntax and for the COPY rejection
	Cause   error
}

func (e *DriverError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DriverError) Unwrap() error {
	return e.Cause
}

// rawBackendError is the minimal shape the error mapper needs from a raw
// backend error; wireclient.RawError satisfies it structurally.
type rawBackendError interface {
	error
	BackendCode() string
}

// mapBackendError implements spec.md §4.1's closed mapping table, grounded
// on lib/pq's error.go Error.Code/Error.Severity fields and generalized
// from lib/pq's internal ErrorCode type into a backend-agnostic code
// string. Any error that doesn't expose a code (including one already
// wrapped as *DriverError) passes through unchanged.
func mapBackendError(err error, sql string, values []any) error {
	if err == nil {
		return nil
	}
	rb, ok := err.(rawBackendError)
	if !ok {
		return err
	}

	switch rb.BackendCode() {
	case "22P02":
		return &DriverError{Kind: KindInvalidInput, Message: rb.Error(), Cause: err}
	case "57P01":
		return &DriverError{Kind: KindBackendTerminated, Message: rb.Error(), Cause: err}
	case "57014":
		if containsCancellationSubstring(rb.Error()) {
			return &DriverError{Kind: KindStatementCancelled, Message: rb.Error(), Cause: err}
		}
		return &DriverError{Kind: KindStatementTimeout, Message: rb.Error(), Cause: err}
	case "23502":
		return &DriverError{Kind: KindNotNullIntegrityConstraintViolation, Message: rb.Error(), Cause: err}
	case "23503":
		return &DriverError{Kind: KindForeignKeyIntegrityConstraintViolation, Message: rb.Error(), Cause: err}
	case "23505":
		return &DriverError{Kind: KindUniqueIntegrityConstraintViolation, Message: rb.Error(), Cause: err}
	case "23514":
		return &DriverError{Kind: KindCheckIntegrityConstraintViolation, Message: rb.Error(), Cause: err}
	case "42601":
		return &DriverError{Kind: KindInputSyntax, Message: rb.Error(), SQL: sql, Values: values, Cause: err}
	default:
		return err
	}
}

const cancellationSubstring = "canceling statement due to user request"

func containsCancellationSubstring(msg string) bool {
	return len(msg) >= len(cancellationSubstring) && indexOf(msg, cancellationSubstring) >= 0
}

func indexOf(haystack, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		if haystack[i:i+n] == needle {
			return i
		}
	}
	return -1
}

func notFoundError(ctx errorLogContext) *DriverError {
	logShapeError(ctx, "NotFoundError")
	return &DriverError{Kind: KindNotFound, Message: "query returned no rows"}
}

func dataIntegrityError(ctx errorLogContext, message string) *DriverError {
	logShapeError(ctx, message)
	return &DriverError{Kind: KindDataIntegrity, Message: message}
}
