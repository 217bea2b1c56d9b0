// Package cloudwatchstat provides an xstats.Sender that publishes to
// Amazon CloudWatch. A Lambda execution environment is frozen between
// invocations, so datapoints are buffered in memory and published by an
// explicit Flush at the end of each invocation rather than on a timer.
package cloudwatchstat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	// maxDatumsPerRequest is the PutMetricData limit on MetricData entries.
	maxDatumsPerRequest = 1000
	// maxDimensions is the CloudWatch limit on dimensions per metric.
	maxDimensions = 30
)

// PutMetricDataAPI is the subset of the CloudWatch client used to publish.
type PutMetricDataAPI interface {
	PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Sender buffers xstats datapoints as CloudWatch metric data. Tags of the
// form "key:value" become dimensions. A tag without a separator becomes a
// dimension with the value "true".
type Sender struct {
	Client    PutMetricDataAPI
	Namespace string
	// Now is replaceable for tests. Defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	pending []types.MetricDatum
}

// Gauge implements xstats.Sender.
func (s *Sender) Gauge(stat string, value float64, tags ...string) {
	s.add(stat, value, types.StandardUnitNone, tags)
}

// Count implements xstats.Sender.
func (s *Sender) Count(stat string, count float64, tags ...string) {
	s.add(stat, count, types.StandardUnitCount, tags)
}

// Histogram implements xstats.Sender. CloudWatch computes the
// distribution from the individual values.
func (s *Sender) Histogram(stat string, value float64, tags ...string) {
	s.add(stat, value, types.StandardUnitNone, tags)
}

// Timing implements xstats.Sender. Durations are recorded in milliseconds.
func (s *Sender) Timing(stat string, value time.Duration, tags ...string) {
	s.add(stat, float64(value)/float64(time.Millisecond), types.StandardUnitMilliseconds, tags)
}

// Pending reports the number of buffered datapoints.
func (s *Sender) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush publishes every buffered datapoint. Datapoints from a failed
// request are dropped; metrics are best effort and must not grow the
// buffer across invocations.
func (s *Sender) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for start := 0; start < len(pending); start += maxDatumsPerRequest {
		end := start + maxDatumsPerRequest
		if end > len(pending) {
			end = len(pending)
		}
		_, err := s.Client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(s.Namespace),
			MetricData: pending[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Sender) add(stat string, value float64, unit types.StandardUnit, tags []string) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	datum := types.MetricDatum{
		MetricName: aws.String(stat),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(now()),
		Dimensions: dimensions(tags),
	}
	s.mu.Lock()
	s.pending = append(s.pending, datum)
	s.mu.Unlock()
}

func dimensions(tags []string) []types.Dimension {
	if len(tags) == 0 {
		return nil
	}
	dims := make([]types.Dimension, 0, len(tags))
	for _, tag := range tags {
		if len(dims) == maxDimensions {
			break
		}
		name, value, found := strings.Cut(tag, ":")
		if name == "" {
			continue
		}
		if !found || value == "" {
			value = "true"
		}
		dims = append(dims, types.Dimension{Name: aws.String(name), Value: aws.String(value)})
	}
	return dims
}
