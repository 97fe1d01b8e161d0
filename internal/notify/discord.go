package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/flashlist/internal/metrics"
)

const (
	colorRed    = 0xE74C3C // remote rejected, unexpected errors
	colorOrange = 0xE67E22 // seller action needed
	colorGrey   = 0x95A5A6 // marketplace deletions

	maxListedIDs    = 10
	maxFieldLength  = 1024
	fieldTruncation = "..."
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

var _ Notifier = (*DiscordNotifier)(nil)

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendPublishFailure posts a publish failure as a Discord embed.
func (d *DiscordNotifier) SendPublishFailure(ctx context.Context, f *PublishFailure) error {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Publish failed: %s", f.Title),
		Color:       failureColor(f.Reason),
		Description: truncate(f.Detail),
		Fields: []discordEmbedField{
			{Name: "Listing", Value: f.ListingID, Inline: true},
			{Name: "Marketplace", Value: f.Marketplace, Inline: true},
			{Name: "Reason", Value: f.Reason, Inline: true},
		},
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

// SendDeletion posts a marketplace deletion notice as a Discord embed.
func (d *DiscordNotifier) SendDeletion(ctx context.Context, del *Deletion) error {
	ids := del.ListingIDs
	more := 0
	if len(ids) > maxListedIDs {
		more = len(ids) - maxListedIDs
		ids = ids[:maxListedIDs]
	}
	listed := "none"
	if len(ids) > 0 {
		listed = strings.Join(ids, "\n")
		if more > 0 {
			listed += fmt.Sprintf("\n... and %d more", more)
		}
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("%s %s deleted on %s", del.Kind, del.ExternalID, del.Marketplace),
		Color: colorGrey,
		Fields: []discordEmbedField{
			{Name: "Listings reconciled", Value: truncate(listed)},
		},
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

func failureColor(reason string) int {
	switch reason {
	case "not_authenticated", "policy_incomplete", "validation":
		return colorOrange
	default:
		return colorRed
	}
}

func truncate(s string) string {
	if len(s) <= maxFieldLength {
		return s
	}
	return s[:maxFieldLength-len(fieldTruncation)] + fieldTruncation
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.New("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
