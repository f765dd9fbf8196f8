// Package notify composes and dispatches "your item is here" notifications
// for resolved interest requests. Dispatch is behind a small interface so the
// delivery channel (email gateway, SMS bridge) can be swapped without
// touching the matcher.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/domain"
)

// Message is a channel-agnostic notification ready for delivery.
type Message struct {
	To       string
	Subject  string
	Body     string
	DeepLink string
}

// Dispatcher delivers a composed message. Implementations must be safe for
// concurrent use: the interest matcher fans out over a worker pool.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// Compose builds the notification for a resolved interest request. The
// recipient is the request's email when present, otherwise its phone number.
func Compose(req *domain.InterestRequest, item domain.NewItem, cfg config.NotifyConfig) Message {
	to := ""
	switch {
	case req.Email != nil && *req.Email != "":
		to = *req.Email
	case req.Phone != nil && *req.Phone != "":
		to = *req.Phone
	}

	deepLink := fmt.Sprintf("%s/%s/%s", cfg.DeepLinkBase, item.ItemType, item.ItemID)

	return Message{
		To:       to,
		Subject:  fmt.Sprintf("We found a match for %q", req.SearchQuery),
		Body: fmt.Sprintf(
			"You asked us to let you know when %q turned up. A new listing just did: %s. See it here: %s",
			req.SearchQuery, item.Title, deepLink,
		),
		DeepLink: deepLink,
	}
}

// LogDispatcher writes notifications to the log instead of delivering them.
// Used in development and as the default until a real gateway is wired.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher(log *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With("dispatcher", "log")}
}

// Dispatch logs the message and reports success.
func (d *LogDispatcher) Dispatch(ctx context.Context, msg Message) error {
	d.log.InfoContext(ctx, "notification dispatched",
		"to", msg.To,
		"subject", msg.Subject,
		"deep_link", msg.DeepLink,
	)
	return nil
}
