package awsx

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const metricNamespace = "EnsembleShop"

// Metrics emits order-flow counters to CloudWatch. All emission is
// best-effort: callers log failures and move on.
type Metrics struct {
	client  CloudWatchAPI
	nowFunc func() time.Time
}

func NewMetrics(client CloudWatchAPI) *Metrics {
	return &Metrics{client: client, nowFunc: time.Now}
}

// OrderPlaced records a successful order and its value.
func (m *Metrics) OrderPlaced(ctx context.Context, totalAmount float64) error {
	now := m.nowFunc()
	return m.put(ctx,
		cwtypes.MetricDatum{
			MetricName: awsString("OrdersPlaced"),
			Timestamp:  &now,
			Unit:       cwtypes.StandardUnitCount,
			Value:      awsFloat(1),
		},
		cwtypes.MetricDatum{
			MetricName: awsString("OrderValue"),
			Timestamp:  &now,
			Unit:       cwtypes.StandardUnitNone,
			Value:      awsFloat(totalAmount),
		},
	)
}

// OrderRejected records a failed placement, dimensioned by rejection reason
// (invalid_request, not_found, insufficient_stock, internal).
func (m *Metrics) OrderRejected(ctx context.Context, reason string) error {
	now := m.nowFunc()
	return m.put(ctx, cwtypes.MetricDatum{
		MetricName: awsString("OrdersRejected"),
		Timestamp:  &now,
		Unit:       cwtypes.StandardUnitCount,
		Value:      awsFloat(1),
		Dimensions: []cwtypes.Dimension{
			{Name: awsString("Reason"), Value: &reason},
		},
	})
}

func (m *Metrics) put(ctx context.Context, data ...cwtypes.MetricDatum) error {
	ns := metricNamespace
	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  &ns,
		MetricData: data,
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func awsFloat(f float64) *float64 { return &f }
