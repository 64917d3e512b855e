package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devotional/config"
	"devotional/internal/domain/constants"
	"devotional/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRun() *entity.JobRun {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.JobRun{
		ID:         "run-1",
		Job:        entity.JobDispatch,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Dispatch:   &entity.DispatchReport{RunAt: started, UsersScanned: 4, UsersSent: 1},
	}
}

func TestLocalHTTPPublisher_PublishJobRun(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishJobRun(context.Background(), sampleRun()))

	assert.Equal(t, "run-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{"run_id": "run-1", "job": "dispatch", "status": "ok"}, received.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.JobRun
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 4, decoded.Dispatch.UsersScanned)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishJobRun(context.Background(), sampleRun())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestReportAttributes_FailedRun(t *testing.T) {
	run := sampleRun()
	run.Error = "failed to enumerate users"

	assert.Equal(t, "failed", reportAttributes(run)["status"])
}

func TestNewReportPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9000/reports"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewReportPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if _, noop := publisher.(*noopPublisher); noop {
				assert.NoError(t, publisher.PublishJobRun(context.Background(), &entity.JobRun{ID: "r", Job: entity.JobRetention}))
			}
		})
	}
}
