package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catering_portal/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

var ErrMissingNATSURL = errors.New("missing NATS_URL")

var log = logrus.WithField("component", "notifications")

// NATSDispatcher publishes customer status notifications to NATS. A
// downstream mailer service renders and delivers them; this side is
// fire-and-forget relative to the workflow transition that produced the
// notification.
//
// Topic layout: notifications.<entity_kind>.status, e.g.
// notifications.quote.status.
type NATSDispatcher struct {
	conn *nats.Conn
}

var _ interfaces.INotificationDispatcher = (*NATSDispatcher)(nil)

func NewNATSDispatcher(url string) (*NATSDispatcher, error) {
	if url == "" {
		return nil, ErrMissingNATSURL
	}
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.WithField("url", url).Info("NATS notification dispatcher connected")
	return &NATSDispatcher{conn: conn}, nil
}

func (d *NATSDispatcher) Send(_ context.Context, n interfaces.StatusNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	topic := fmt.Sprintf("notifications.%s.status", n.EntityKind)
	if err := d.conn.Publish(topic, payload); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"topic":      topic,
		"entity_id":  n.EntityID,
		"new_status": n.NewStatus,
	}).Info("notification published")
	return nil
}

func (d *NATSDispatcher) Close() error {
	d.conn.Close()
	return nil
}

// LogDispatcher is a no-op fallback used when NATS is not configured; it
// records what would have been sent so local development still shows the
// notification flow.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func (LogDispatcher) Send(_ context.Context, n interfaces.StatusNotification) error {
	log.WithFields(logrus.Fields{
		"recipient":  n.Recipient,
		"entity_id":  n.EntityID,
		"new_status": n.NewStatus,
	}).Info("notification (log only)")
	return nil
}
