package llm

import (
	"context"
	"strings"
)

// Purposes recorded with each request; event stats group by them.
const (
	PurposeTutor      = "tutor"
	PurposeProblemGen = "problem-gen"

	purposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx. A blank purpose leaves ctx as is.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return purposeUnknown
}

// KnownPurpose reports whether p is one of the purposes the app sends.
func KnownPurpose(p string) bool {
	return p == PurposeTutor || p == PurposeProblemGen
}
