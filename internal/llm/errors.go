package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is the only error students see from the tutor or the
// problem generator. Fail wraps every provider error so it matches this
// under errors.Is; the kind and cause are for logs.
var ErrUnavailable = errors.New("assistant unavailable")

// FailureKind groups provider errors by how a caller should react.
type FailureKind int

const (
	// KindTransient covers network errors and 5xx replies.
	KindTransient FailureKind = iota
	KindRateLimited
	// KindMalformed is a reply that is empty or breaks the schema.
	KindMalformed
	// KindTruncated is a reply cut off at MaxTokens.
	KindTruncated
	KindCanceled
)

func (k FailureKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate-limited"
	case KindMalformed:
		return "malformed"
	case KindTruncated:
		return "truncated"
	case KindCanceled:
		return "canceled"
	default:
		return "transient"
	}
}

// Classify reports the kind of err. Anything unrecognised is transient.
func Classify(err error) FailureKind {
	var (
		rl  *ErrRateLimit
		inv *ErrInvalidResponse
		cut *ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &cut):
		return KindTruncated
	case errors.As(err, &inv):
		return KindMalformed
	case errors.As(err, &rl):
		return KindRateLimited
	default:
		return KindTransient
	}
}

// Failure is a provider error as callers of the tutor and generator see it.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrUnavailable, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Is makes every Failure match ErrUnavailable.
func (f *Failure) Is(target error) bool { return target == ErrUnavailable }

// Fail wraps err as a *Failure. nil stays nil and a Failure is returned as is.
func Fail(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	return &Failure{Kind: Classify(err), Err: err}
}

// ErrRateLimit is a 429 from the provider.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry in %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is a reply that could not be used: empty text, or JSON
// that does not match the request schema. Content holds what came back.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("unusable reply: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable means the provider could not be reached or failed
// on its side.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unreachable: %v", e.Err)
	}
	return "provider unreachable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is structured output that stopped at MaxTokens
// before the JSON was complete.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("reply truncated at max tokens after %d bytes", len(e.Content))
}
