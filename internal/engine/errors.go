package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Publish failures. Every error returned by a Publisher matches exactly one
// of these with errors.Is.
var (
	ErrValidation       = errors.New("listing invalid")
	ErrNotAuthenticated = errors.New("marketplace account not connected")
	ErrPolicyIncomplete = errors.New("seller policies incomplete")
	ErrRemoteRejected   = errors.New("marketplace rejected listing")

	// ErrInternal is a local failure, such as a store outage, that says
	// nothing about the listing itself.
	ErrInternal = errors.New("internal publish failure")
)

// Engine errors.
var (
	ErrNoPublisher   = errors.New("no publisher for marketplace")
	ErrNotTargeted   = errors.New("listing does not target marketplace")
	ErrAlreadyPosted = errors.New("listing already posted")

	// ErrPublishInProgress means another attempt holds the marketplace.
	ErrPublishInProgress = errors.New("publish already in progress")

	// ErrTargetLive means an edit tried to drop a marketplace the listing
	// is posted on.
	ErrTargetLive = errors.New("listing is live on marketplace")
)

// ValidationError lists the problems found before any remote call.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid listing: " + strings.Join(e.Problems, "; ")
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RemoteError is a marketplace refusal at one step of the publish workflow.
type RemoteError struct {
	Step string // inventory_item, offer, publish
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("marketplace rejected %s: %v", e.Step, e.Err)
}

// Is makes errors.Is(err, ErrRemoteRejected) match.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteRejected
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// outcome is the metrics label for a publish result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "posted"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrPolicyIncomplete):
		return "policy_incomplete"
	case errors.Is(err, ErrRemoteRejected):
		return "remote_rejected"
	case errors.Is(err, ErrInternal):
		return "internal"
	default:
		return "error"
	}
}
