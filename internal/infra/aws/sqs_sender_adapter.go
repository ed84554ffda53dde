package aws

import (
	"context"

	"zipcode-web/internal/domain/gateway/queue"
	"zipcode-web/internal/domain/model"
	"zipcode-web/pkg/sqs"
)

const eventTypeAttribute = "eventType"

// ZipRegisteredEventType is the eventType attribute of registration messages
const ZipRegisteredEventType = "zip.registered"

// SQSPublisherAdapter adapts pkg/sqs.Sender to the domain queue gateways
type SQSPublisherAdapter struct {
	sqsSender *sqs.Sender
	queueName string
}

var (
	_ queue.EventPublisher = (*SQSPublisherAdapter)(nil)
	_ queue.HealthGateway  = (*SQSPublisherAdapter)(nil)
)

// NewSQSPublisherAdapter creates a publisher writing to queueName
func NewSQSPublisherAdapter(sqsClient sqs.SQSClient, queueName string) *SQSPublisherAdapter {
	return &SQSPublisherAdapter{
		sqsSender: sqs.NewSender(sqsClient),
		queueName: queueName,
	}
}

func (adapter *SQSPublisherAdapter) PublishZipRegistered(ctx context.Context, event model.ZipRegisteredEvent) error {
	_, err := adapter.sqsSender.SendMessage(ctx, adapter.queueName, event, map[string]string{
		eventTypeAttribute: ZipRegisteredEventType,
	})
	return err
}

func (adapter *SQSPublisherAdapter) Health(ctx context.Context) model.ComponentHealthStatus {
	url, err := adapter.sqsSender.QueueURL(ctx, adapter.queueName)
	if err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"queue": adapter.queueName, "message": err.Error()},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"queue": adapter.queueName, "url": url},
	}
}
