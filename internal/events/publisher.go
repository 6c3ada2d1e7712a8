// Package events publishes catalog change events over NATS.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/models"
)

const SubjectProductCreated = "catalog.product.created"

// ProductCreatedEvent is the wire format of a product creation event.
type ProductCreatedEvent struct {
	EventType  string          `json:"event_type"`
	Timestamp  time.Time       `json:"timestamp"`
	ProductID  uint            `json:"product_id"`
	Name       string          `json:"name"`
	CategoryID uint            `json:"category_id"`
	BasePrice  decimal.Decimal `json:"base_price"`
}

// Publisher publishes catalog events. Publishing is fire-and-forget: a failed
// publish is logged and never surfaces to the caller.
type Publisher struct {
	nc     *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to NATS and returns a catalog events publisher.
func NewPublisher(natsURL string) (*Publisher, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("catalog-service"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logrus.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logrus.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		nc:     nc,
		logger: logrus.WithField("component", "catalog-events"),
	}, nil
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
	}
}

// PublishProductCreated publishes a catalog.product.created event
// asynchronously.
func (p *Publisher) PublishProductCreated(product *models.Product) {
	basePrice := decimal.Zero
	if product.BasePrice != nil {
		basePrice = *product.BasePrice
	}

	event := &ProductCreatedEvent{
		EventType:  SubjectProductCreated,
		Timestamp:  time.Now().UTC(),
		ProductID:  product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
		BasePrice:  basePrice,
	}

	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.WithError(err).Error("failed to marshal product event")
			return
		}
		if err := p.nc.Publish(SubjectProductCreated, data); err != nil {
			p.logger.WithError(err).WithField("product_id", event.ProductID).
				Error("failed to publish product event")
			return
		}
		p.logger.WithFields(logrus.Fields{
			"product_id": event.ProductID,
			"subject":    SubjectProductCreated,
		}).Info("product event published")
	}()
}
