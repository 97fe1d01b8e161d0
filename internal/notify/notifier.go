// Package notify reports publish failures and marketplace-side deletions
// to an operator channel.
package notify

import "context"

// PublishFailure describes a listing that could not be published.
type PublishFailure struct {
	ListingID   string
	Title       string
	Marketplace string
	Reason      string // validation, not_authenticated, policy_incomplete, remote_rejected, internal, error
	Detail      string
}

// Deletion describes listings a marketplace reported as removed.
type Deletion struct {
	Marketplace string
	Kind        string // item or account
	ExternalID  string
	ListingIDs  []string
}

// Notifier delivers operator notifications.
type Notifier interface {
	SendPublishFailure(ctx context.Context, f *PublishFailure) error
	SendDeletion(ctx context.Context, d *Deletion) error
}
