package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

var _ Notifier = (*NoOpNotifier)(nil)

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPublishFailure logs and discards a publish failure.
func (n *NoOpNotifier) SendPublishFailure(_ context.Context, f *PublishFailure) error {
	n.log.Debug("notification discarded (no backend configured)",
		"listing_id", f.ListingID,
		"marketplace", f.Marketplace,
		"reason", f.Reason,
	)
	return nil
}

// SendDeletion logs and discards a deletion notice.
func (n *NoOpNotifier) SendDeletion(_ context.Context, d *Deletion) error {
	n.log.Debug("deletion notification discarded (no backend configured)",
		"marketplace", d.Marketplace,
		"kind", d.Kind,
		"listings", len(d.ListingIDs),
	)
	return nil
}
