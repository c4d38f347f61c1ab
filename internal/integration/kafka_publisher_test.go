//go:build integration

package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/climate-pulse/internal/adapter/kafka"
	"github.com/couchcryptid/climate-pulse/internal/config"
	"github.com/couchcryptid/climate-pulse/internal/dataset"
	"github.com/couchcryptid/climate-pulse/internal/domain"
	"github.com/couchcryptid/climate-pulse/internal/insight"
	"github.com/couchcryptid/climate-pulse/internal/observability"
)

const testProjectionTopic = "test-climate-projections"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node KRaft broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("climate-pulse-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

type publishedMessage struct {
	Event   domain.ProjectionEvent
	Key     string
	Headers map[string]string
}

func readPublished(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from projection topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var event domain.ProjectionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event), "unmarshal projection event")

	return publishedMessage{Event: event, Key: string(msg.Key), Headers: headers}
}

// TestProjectionPublishedToKafka drives a projection through the service and
// reads the resulting event back from the broker.
func TestProjectionPublishedToKafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testProjectionTopic)

	cfg := &config.Config{
		KafkaBrokers:         []string{broker},
		KafkaProjectionTopic: testProjectionTopic,
	}
	publisher := kafka.NewPublisher(cfg, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	loader := dataset.NewLoader(dataset.NewDirSource("../dataset/testdata"), dataset.FormatCSV, discardLogger())
	metrics := observability.NewMetricsForTesting()
	// Metadata round trips on a fresh container can be slow.
	svc := insight.New(loader, publisher, 16, discardLogger(), metrics).WithPublishTimeout(30 * time.Second)
	require.NoError(t, svc.Run(ctx))

	view, err := svc.Project(ctx, domain.ModerateReduction, 2040)
	require.NoError(t, err)
	require.Equal(t, 4, view.Projected.Len())

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testProjectionTopic,
		Partition:   0,
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	pm := readPublished(ctx, t, consumer)
	assert.Equal(t, "moderate_reduction", pm.Key)
	assert.Equal(t, "moderate_reduction", pm.Headers["scenario"])
	assert.Equal(t, "Moderate", pm.Headers["impact_level"])
	_, err = time.Parse(time.RFC3339, pm.Headers["computed_at"])
	assert.NoError(t, err, "computed_at should be valid RFC3339")

	assert.NotEmpty(t, pm.Event.ID)
	assert.Equal(t, domain.ModerateReduction, pm.Event.Result.Scenario)
	assert.Equal(t, 2040, pm.Event.Result.TargetYear)
	assert.Equal(t, view.Projected.Points(), pm.Event.Result.Projected.Points())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ProjectionEventsPublished.WithLabelValues("success")), 0)
}

// TestPublisherDirect verifies the adapter on its own: one Publish call, one
// message with the expected key and payload.
func TestPublisherDirect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testProjectionTopic)

	publisher := kafka.NewPublisher(&config.Config{
		KafkaBrokers:         []string{broker},
		KafkaProjectionTopic: testProjectionTopic,
	}, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	history := domain.MustTimeSeries(domain.Point{Year: 2020, Value: 100})
	result, err := domain.Project(history, domain.BusinessAsUsual, 2030)
	require.NoError(t, err)
	event := domain.NewProjectionEvent(result)

	require.NoError(t, publisher.Publish(ctx, event))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testProjectionTopic,
		Partition:   0,
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	pm := readPublished(ctx, t, consumer)
	assert.Equal(t, "business_as_usual", pm.Key)
	assert.Equal(t, "Severe", pm.Headers["impact_level"])
	assert.Equal(t, event.ID, pm.Event.ID)
	assert.True(t, event.ComputedAt.Equal(pm.Event.ComputedAt))
}
