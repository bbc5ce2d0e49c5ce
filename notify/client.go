package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	notificationsPath = "/api/notifications"
	healthPath        = "/api/notifications/health"

	defaultTimeout = 5 * time.Second
)

// ErrEmptyBaseURL is returned when a client is created without a base URL.
var ErrEmptyBaseURL = errors.New("base URL must not be empty")

// Logger interface for delivery logging and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// RoomAssignmentNotification is the payload sent when a room was assigned to
// an exam.
type RoomAssignmentNotification struct {
	CourseCode   string    `json:"courseCode"`
	ExamDate     string    `json:"examDate"`
	RoomNumber   string    `json:"roomNumber"`
	RoomCapacity int       `json:"roomCapacity"`
	AssignedAt   time.Time `json:"assignedAt"`
}

// Client delivers room assignment notifications to the notification service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
	retryOpts  []RetryOption
}

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

// WithLogger sets the logger for the Client.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithRetryOptions overrides the default retry behavior for deliveries.
func WithRetryOptions(options ...RetryOption) ClientOption {
	return func(c *Client) error {
		c.retryOpts = options
		return nil
	}
}

// NewClient creates a notification client for the service at baseURL.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NotifyRoomAssignment sends the notification, retrying transient failures
// with exponential backoff. A non-nil error means delivery gave up.
func (c *Client) NotifyRoomAssignment(ctx context.Context, notification RoomAssignmentNotification) error {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	c.logDebug("sending room assignment notification",
		"course", notification.CourseCode, "room", notification.RoomNumber)

	err = RetryWithExponentialBackoff(ctx, func(ctx context.Context) error {
		return c.post(ctx, body)
	}, c.retryOpts...)
	if err != nil {
		c.logError("room assignment notification failed",
			"course", notification.CourseCode, "error", err.Error())
		return err
	}

	c.logInfo("room assignment notification sent", "course", notification.CourseCode)

	return nil
}

func (c *Client) post(ctx context.Context, body []byte) error {
	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+notificationsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() { _ = response.Body.Close() }()

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		return nil
	case response.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, response.StatusCode)
	default:
		return fmt.Errorf("notification rejected with status %d", response.StatusCode)
	}
}

// HealthCheck reports whether the notification service is reachable.
func (c *Client) HealthCheck(ctx context.Context) bool {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return false
	}
	defer func() { _ = response.Body.Close() }()

	return response.StatusCode >= 200 && response.StatusCode < 300
}

func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Client) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Client) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}
