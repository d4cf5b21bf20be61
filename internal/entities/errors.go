package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation               = errors.New("validation failed")
	ErrGeocode                  = errors.New("address could not be geocoded")
	ErrSegmentNotOpen           = errors.New("segment is not open")
	ErrSegmentAlreadyAssigned   = errors.New("segment already assigned")
	ErrInvalidCancellation      = errors.New("invalid cancellation")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrSegmentNotFound          = errors.New("segment not found")
	ErrDeliveryNotFound         = errors.New("delivery not found")
	ErrHandoverNotFound         = errors.New("handover not found")
	ErrProposalNotFound         = errors.New("proposal not found")
	ErrCourierPositionNotFound  = errors.New("courier position not found")
	ErrNotParticipant           = errors.New("user is not a participant of the delivery")
	ErrVerificationCodeMismatch = errors.New("verification code mismatch")
)

// ValidationError содержит все нарушенные правила запроса.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Violations копит нарушения; Err возвращает nil, если их нет.
type Violations []string

func (v *Violations) Add(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: append([]string(nil), v...)}
}

// GeocodeError - адрес, который не удалось геокодировать.
type GeocodeError struct {
	Address string
	Err     error
}

func (e *GeocodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", ErrGeocode, e.Address, e.Err)
	}
	return fmt.Sprintf("%s: %q", ErrGeocode, e.Address)
}

func (e *GeocodeError) Is(target error) bool {
	return target == ErrGeocode
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// TransitionError - отклонённая смена статуса.
type TransitionError struct {
	SegmentID string
	From      SegmentStatus
	To        SegmentStatus
	Reason    string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: segment %s: %s -> %s", ErrInvalidTransition, e.SegmentID, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
