package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"nearnow/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Event type attribute values used for subscription filtering.
const (
	eventTypeChatPush  = "chat_push"
	eventTypeMatchPush = "match_push"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishChatPush publishes a chat push event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishChatPush(ctx context.Context, event *service.ChatPushEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeChatPush,
		"message_id": event.MessageID.String(),
		"match_id":   event.MatchID.String(),
	}

	return p.publish(ctx, event, attributes)
}

// PublishMatchPush publishes a match push event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishMatchPush(ctx context.Context, event *service.MatchPushEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeMatchPush,
		"match_id":   event.MatchID.String(),
	}

	return p.publish(ctx, event, attributes)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, event any, attributes map[string]string) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing event",
		slog.String("event_type", attributes["event_type"]),
		slog.String("match_id", attributes["match_id"]),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("event_type", attributes["event_type"]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
