package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/product-catalog/internal/config"
	"github.com/spec-kit/product-catalog/internal/events"
)

// NotificationService handles emitting notifications for catalog events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventProductCreated, n.handleProductCreated)
	n.dispatcher.Subscribe(events.EventProductUpdated, n.handleProductUpdated)
	n.dispatcher.Subscribe(events.EventProductDeleted, n.handleProductDeleted)
}

func (n *NotificationService) handleProductCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductCreated", zap.String("product_id", event.ProductID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductUpdated", zap.String("product_id", event.ProductID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductDeleted", zap.String("product_id", event.ProductID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("product_id", event.ProductID),
		zap.String("event_type", string(event.Type)))
}
