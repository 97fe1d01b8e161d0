// Package notification applies marketplace deletion notifications to local
// listings and credentials.
package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies which form of deletion a notification carries.
type Kind string

const (
	// KindItem reports a single marketplace item removed remotely.
	KindItem Kind = "item"
	// KindAccount reports a marketplace account closed by its owner.
	KindAccount Kind = "account"
)

// ErrMalformed is returned when a notification body cannot be decoded or
// names neither an item nor a user.
var ErrMalformed = errors.New("malformed deletion notification")

// Notification is the push body posted by the marketplace.
type Notification struct {
	Metadata     Metadata `json:"metadata"`
	Notification Payload  `json:"notification"`
}

// Metadata describes the notification topic.
type Metadata struct {
	Topic         string `json:"topic"`
	SchemaVersion string `json:"schemaVersion"`
	Deprecated    bool   `json:"deprecated"`
}

// Payload is the delivery envelope around Data.
type Payload struct {
	NotificationID      string    `json:"notificationId"`
	EventDate           time.Time `json:"eventDate"`
	PublishDate         time.Time `json:"publishDate"`
	PublishAttemptCount int       `json:"publishAttemptCount"`
	Data                Data      `json:"data"`
}

// Data names the deleted item or account.
type Data struct {
	ItemID    string `json:"itemId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Username  string `json:"username,omitempty"`
	EIASToken string `json:"eiasToken,omitempty"`
}

// Kind reports the notification form. An item id takes precedence over a
// user id.
func (n *Notification) Kind() Kind {
	if n.Notification.Data.ItemID != "" {
		return KindItem
	}
	return KindAccount
}

// ExternalID returns the item or user id the notification refers to.
func (n *Notification) ExternalID() string {
	if n.Kind() == KindItem {
		return n.Notification.Data.ItemID
	}
	return n.Notification.Data.UserID
}

// Parse decodes a notification body.
func Parse(body []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	d := &n.Notification.Data
	d.ItemID = strings.TrimSpace(d.ItemID)
	d.UserID = strings.TrimSpace(d.UserID)
	if d.ItemID == "" && d.UserID == "" {
		return nil, fmt.Errorf("%w: data carries neither itemId nor userId", ErrMalformed)
	}

	return &n, nil
}
