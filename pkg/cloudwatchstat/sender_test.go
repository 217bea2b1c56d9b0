package cloudwatchstat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/rs/xstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (c *recordingClient) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	c.inputs = append(c.inputs, in)
	if c.err != nil {
		return nil, c.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

var fixed = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestSenderRecordsUnitsAndDimensions(t *testing.T) {
	client := &recordingClient{}
	s := &Sender{Client: client, Namespace: "scaffold", Now: func() time.Time { return fixed }}

	s.Count("hello", 1, "outcome:ok", "cold")
	s.Gauge("memory", 128)
	s.Histogram("payload", 42)
	s.Timing("bootstrap", 1500*time.Microsecond)
	require.Equal(t, 4, s.Pending())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 0, s.Pending())
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "scaffold", aws.ToString(in.Namespace))
	require.Len(t, in.MetricData, 4)

	count := in.MetricData[0]
	assert.Equal(t, "hello", aws.ToString(count.MetricName))
	assert.Equal(t, types.StandardUnitCount, count.Unit)
	assert.Equal(t, fixed, aws.ToTime(count.Timestamp))
	require.Len(t, count.Dimensions, 2)
	assert.Equal(t, "outcome", aws.ToString(count.Dimensions[0].Name))
	assert.Equal(t, "ok", aws.ToString(count.Dimensions[0].Value))
	assert.Equal(t, "cold", aws.ToString(count.Dimensions[1].Name))
	assert.Equal(t, "true", aws.ToString(count.Dimensions[1].Value))

	assert.Nil(t, in.MetricData[1].Dimensions)
	assert.Equal(t, types.StandardUnitMilliseconds, in.MetricData[3].Unit)
	assert.Equal(t, 1.5, aws.ToFloat64(in.MetricData[3].Value))
}

func TestSenderFlushBatches(t *testing.T) {
	client := &recordingClient{}
	s := &Sender{Client: client, Namespace: "scaffold"}
	for i := 0; i < maxDatumsPerRequest+5; i++ {
		s.Count("hits", 1)
	}
	require.NoError(t, s.Flush(context.Background()))
	require.Len(t, client.inputs, 2)
	assert.Len(t, client.inputs[0].MetricData, maxDatumsPerRequest)
	assert.Len(t, client.inputs[1].MetricData, 5)
}

func TestSenderFlushEmpty(t *testing.T) {
	client := &recordingClient{}
	s := &Sender{Client: client}
	require.NoError(t, s.Flush(context.Background()))
	assert.Empty(t, client.inputs)
}

func TestSenderFlushErrorDropsBuffer(t *testing.T) {
	client := &recordingClient{err: errors.New("throttled")}
	s := &Sender{Client: client}
	s.Count("hits", 1)
	require.Error(t, s.Flush(context.Background()))
	assert.Equal(t, 0, s.Pending())
}

func TestDimensionsLimit(t *testing.T) {
	tags := make([]string, 0, maxDimensions+3)
	for i := 0; i < maxDimensions+3; i++ {
		tags = append(tags, fmt.Sprintf("k%d:v", i))
	}
	tags = append([]string{":skipped"}, tags...)
	dims := dimensions(tags)
	assert.Len(t, dims, maxDimensions)
	assert.Equal(t, "k0", aws.ToString(dims[0].Name))
}

func TestSenderThroughXStats(t *testing.T) {
	client := &recordingClient{}
	s := &Sender{Client: client, Namespace: "scaffold"}
	stat := xstats.New(s)
	stat.AddTags("stage:dev")
	stat.Count("hello", 1, "outcome:ok")

	require.NoError(t, s.Flush(context.Background()))
	require.Len(t, client.inputs, 1)
	dims := client.inputs[0].MetricData[0].Dimensions
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		names = append(names, aws.ToString(d.Name))
	}
	assert.ElementsMatch(t, []string{"stage", "outcome"}, names)
}
