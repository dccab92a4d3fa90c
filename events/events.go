// SPDX-License-Identifier: GPL-3.0-only

// Package events publishes account lifecycle events to an AMQP broker.
// The publisher is optional: without AMQP_URL every publish is a no-op,
// and broker failures are logged but never surfaced to the user.
package events

import (
	"encoding/json"
	"time"

	"matchbase-server/commons"
	"matchbase-server/crypto"

	amqp "github.com/rabbitmq/amqp091-go"
)

const Exchange = "account.events"

const (
	TypeRegistered = "account.registered"
	TypeLogin      = "account.login"
)

type Event struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Publisher struct {
	url string
}

// NewPublisher reads AMQP_URL. A nil-URL publisher is valid and silently
// drops events.
func NewPublisher() *Publisher {
	url := commons.GetEnv("AMQP_URL")
	if url == "" {
		commons.Logger.Debug("AMQP_URL not set, account events disabled")
	}
	return &Publisher{url: url}
}

func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// Publish emits one event. Connections are per-publish; the event volume
// here is a handful per login/registration, not a message pipeline.
func (p *Publisher) Publish(eventType string, userID uint, email string) {
	if !p.Enabled() {
		return
	}

	eventID, err := crypto.GenerateRandomString("evt_", 16)
	if err != nil {
		commons.Logger.Error("Failed to generate event ID:", err)
		return
	}

	body, err := json.Marshal(Event{
		EventID:   eventID,
		Type:      eventType,
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		commons.Logger.Error("Failed to encode account event:", err)
		return
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		commons.Logger.Errorf("Failed to connect to AMQP broker: %v", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		commons.Logger.Errorf("Failed to open AMQP channel: %v", err)
		return
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		commons.Logger.Errorf("Failed to declare exchange %s: %v", Exchange, err)
		return
	}

	err = ch.Publish(Exchange, eventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    eventID,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		commons.Logger.Errorf("Failed to publish %s event: %v", eventType, err)
		return
	}
	commons.Logger.Debugf("Published %s event %s", eventType, eventID)
}
