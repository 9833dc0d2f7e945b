package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// MetricsAPI is the subset of the CloudWatch client used by Metrics.
type MetricsAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

var _ MetricsAPI = (*cloudwatch.Client)(nil)

// Metrics handles application metrics and monitoring
type Metrics struct {
	namespace string
	client    MetricsAPI
	logger    *zap.Logger
	now       func() time.Time
}

// NewMetrics creates a new metrics instance. A nil client disables recording.
func NewMetrics(namespace string, client MetricsAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordInvocation records one handler invocation: its latency and a count,
// both dimensioned by operation and status class (2xx, 4xx, 5xx).
func (m *Metrics) RecordInvocation(ctx context.Context, operation string, statusCode int, latency time.Duration) {
	if m == nil || m.client == nil {
		return
	}

	dimensions := []types.Dimension{
		{
			Name:  aws.String("Operation"),
			Value: aws.String(operation),
		},
		{
			Name:  aws.String("StatusClass"),
			Value: aws.String(StatusClass(statusCode)),
		},
	}
	timestamp := aws.Time(m.now())

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("InvocationLatency"),
				Dimensions: dimensions,
				Value:      aws.Float64(float64(latency.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  timestamp,
			},
			{
				MetricName: aws.String("InvocationCount"),
				Dimensions: dimensions,
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  timestamp,
			},
		},
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		// Metrics never fail the request
		m.logger.Warn("Failed to send metrics",
			zap.Error(err),
			zap.String("operation", operation),
		)
	}
}

// StatusClass renders a status code as its class, e.g. 404 -> "4xx".
func StatusClass(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return "unknown"
	}
	return strconv.Itoa(statusCode/100) + "xx"
}
