package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"products-backend/domain/events"
	"products-backend/domain/product"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAPI struct {
	putEventsFunc func(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

func (m *mockAPI) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	if m.putEventsFunc != nil {
		return m.putEventsFunc(ctx, params, optFns...)
	}
	return &eventbridge.PutEventsOutput{}, nil
}

func TestEventBridgePublisher_Publish(t *testing.T) {
	var captured *eventbridge.PutEventsInput
	api := &mockAPI{
		putEventsFunc: func(_ context.Context, params *eventbridge.PutEventsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
			captured = params
			return &eventbridge.PutEventsOutput{}, nil
		},
	}
	publisher := NewEventBridgePublisher(api, "products-bus", zap.NewNop())

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := events.NewProductUpdated(product.Key{ProductID: "p-1", Category: "books"}, []string{"stock"}, ts)

	require.NoError(t, publisher.Publish(context.Background(), event))

	require.NotNil(t, captured)
	require.Len(t, captured.Entries, 1)
	entry := captured.Entries[0]
	assert.Equal(t, "products-bus", *entry.EventBusName)
	assert.Equal(t, events.SourceProducts, *entry.Source)
	assert.Equal(t, events.TypeProductUpdated, *entry.DetailType)
	assert.Equal(t, ts, *entry.Time)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(*entry.Detail), &detail))
	assert.Equal(t, "p-1", detail["product_id"])
	assert.Equal(t, []any{"stock"}, detail["updated_attributes"])
	assert.NotEmpty(t, detail["event_id"])
}

func TestEventBridgePublisher_Failures(t *testing.T) {
	event := events.NewProductDeleted(product.Key{ProductID: "p-1"}, time.Now())

	t.Run("client error", func(t *testing.T) {
		api := &mockAPI{
			putEventsFunc: func(context.Context, *eventbridge.PutEventsInput, ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
				return nil, errors.New("access denied")
			},
		}
		err := NewEventBridgePublisher(api, "bus", zap.NewNop()).Publish(context.Background(), event)
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("failed entry", func(t *testing.T) {
		api := &mockAPI{
			putEventsFunc: func(context.Context, *eventbridge.PutEventsInput, ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
				return &eventbridge.PutEventsOutput{
					FailedEntryCount: 1,
					Entries: []types.PutEventsResultEntry{
						{ErrorCode: aws.String("InternalFailure"), ErrorMessage: aws.String("try again")},
					},
				}, nil
			},
		}
		err := NewEventBridgePublisher(api, "bus", zap.NewNop()).Publish(context.Background(), event)
		assert.EqualError(t, err, "1 events failed to publish")
	})
}

func TestNoopEventBus(t *testing.T) {
	assert.NoError(t, NoopEventBus{}.Publish(context.Background(), events.NewProductDeleted(product.Key{ProductID: "p"}, time.Now())))
}
