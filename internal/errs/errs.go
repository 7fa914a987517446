// Package errs defines the error taxonomy for the sales core.
//
// Validation and order-processing errors are recoverable user-input
// mistakes; persistence and corruption errors are not and must abort
// the enclosing workflow. Backup errors are reported but never block
// a save that otherwise succeeded.
package errs

import (
	"errors"
	"fmt"
)

// ProcessingKind classifies order-processing failures.
type ProcessingKind string

const (
	KindInvalidProduct      ProcessingKind = "invalid_product"
	KindInsufficientStock   ProcessingKind = "insufficient_stock"
	KindCreditLimitExceeded ProcessingKind = "credit_limit_exceeded"
	KindInvalidOutlet       ProcessingKind = "invalid_outlet"
)

// ConfigurationError reports an invalid or missing configuration value.
// Declared for completeness; the core layer itself never raises it.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Key, e.Message)
}

// ValidationError reports a violated input rule. Suggestions, when
// present, are candidate corrections ordered by relevance.
type ValidationError struct {
	Message     string
	Suggestions []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// OrderProcessingError reports a business-rule failure during order
// building or confirmation.
type OrderProcessingError struct {
	Kind    ProcessingKind
	Message string
}

func (e *OrderProcessingError) Error() string {
	return e.Message
}

// Is lets callers match on the kind via errors.Is with a bare
// &OrderProcessingError{Kind: ...} target.
func (e *OrderProcessingError) Is(target error) bool {
	var t *OrderProcessingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// PersistenceError reports an I/O failure while loading or saving a
// collection. Retryable, unlike CorruptionError.
type PersistenceError struct {
	Collection string
	Op         string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s collection %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CorruptionError reports an unparsable stored file. Kept distinct from
// PersistenceError because recovery differs: corruption implies possible
// data loss requiring manual intervention.
type CorruptionError struct {
	Path string
	Err  error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("corrupted collection file %s: %v", e.Path, e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }

// BackupError reports a failed backup of a collection file. Non-fatal:
// the primary save proceeds regardless.
type BackupError struct {
	Collection string
	Err        error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("failed to back up collection %s: %v", e.Collection, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }

// NewProcessing builds an OrderProcessingError with a formatted message.
func NewProcessing(kind ProcessingKind, format string, args ...any) *OrderProcessingError {
	return &OrderProcessingError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
