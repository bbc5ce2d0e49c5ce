package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssc-labs/exam-session-go/notify"
)

func testNotification() notify.RoomAssignmentNotification {
	return notify.RoomAssignmentNotification{
		CourseCode:   "PSSC",
		ExamDate:     "2026-06-15",
		RoomNumber:   "A101",
		RoomCapacity: 30,
		AssignedAt:   time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
}

func Test_Client_NotifyRoomAssignment_SendsPayload(t *testing.T) {
	var received notify.RoomAssignmentNotification

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/notifications", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL)
	require.NoError(t, err)

	err = client.NotifyRoomAssignment(context.Background(), testNotification())

	require.NoError(t, err)
	assert.Equal(t, "PSSC", received.CourseCode)
	assert.Equal(t, "A101", received.RoomNumber)
	assert.Equal(t, 30, received.RoomCapacity)
}

func Test_Client_NotifyRoomAssignment_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL,
		notify.WithRetryOptions(notify.WithBaseDelay(time.Millisecond), notify.WithJitterFactor(0)))
	require.NoError(t, err)

	err = client.NotifyRoomAssignment(context.Background(), testNotification())

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func Test_Client_NotifyRoomAssignment_RejectionFailsFast(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL)
	require.NoError(t, err)

	err = client.NotifyRoomAssignment(context.Background(), testNotification())

	require.Error(t, err)
	assert.NotErrorIs(t, err, notify.ErrServiceUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func Test_Client_HealthCheck(t *testing.T) {
	healthy := true

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notifications/health", r.URL.Path)
		if healthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL)
	require.NoError(t, err)

	assert.True(t, client.HealthCheck(context.Background()))

	healthy = false
	assert.False(t, client.HealthCheck(context.Background()))
}

func Test_NewClient_EmptyBaseURL_ReturnsError(t *testing.T) {
	client, err := notify.NewClient("")

	assert.ErrorIs(t, err, notify.ErrEmptyBaseURL)
	assert.Nil(t, client)
}
