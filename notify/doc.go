// Package notify sends room assignment notifications to the external
// notification service over HTTP.
//
// Delivery is best effort: callers persist first and treat a notification
// failure as non-fatal. Transient failures are retried with exponential
// backoff and jitter.
package notify
