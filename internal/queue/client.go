package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/resume-evaluator/internal/types"
)

// DefaultCallTimeout bounds one round trip through the worker. Evaluations
// make dozens of generation calls, so the budget is generous.
const DefaultCallTimeout = 10 * time.Minute

// ReplyTTL keeps an uncollected reply around long enough for a caller that
// raced the worker, without leaking abandoned lists.
const ReplyTTL = 15 * time.Minute

// Client submits evaluation requests over a broker and waits for the reply.
type Client struct {
	broker    Broker
	queueName string
	timeout   time.Duration
}

// NewClient creates a caller for the named request queue. A non-positive
// timeout falls back to DefaultCallTimeout.
func NewClient(broker Broker, queueName string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Client{broker: broker, queueName: queueName, timeout: timeout}
}

// Call publishes one request and blocks for its response. A failed
// evaluation comes back as an error carrying the worker's message; a
// missing reply within the timeout comes back as ErrTimeout.
func (c *Client) Call(ctx context.Context, vacancyText, resumeText string) (*types.CombinedReport, error) {
	correlationID := uuid.NewString()
	envelope := Envelope{
		CorrelationID: correlationID,
		ReplyTo:       fmt.Sprintf("%s:reply:%s", c.queueName, correlationID),
		Request: Request{
			VacancyText: vacancyText,
			ResumeText:  resumeText,
		},
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	if err := c.broker.Publish(ctx, c.queueName, payload); err != nil {
		return nil, fmt.Errorf("publish request: %w", err)
	}

	raw, err := c.broker.Await(ctx, envelope.ReplyTo, c.timeout)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if response.CorrelationID != correlationID {
		return nil, fmt.Errorf("correlation id mismatch: sent %s, got %s", correlationID, response.CorrelationID)
	}

	switch response.Status {
	case StatusSuccess:
		var report types.CombinedReport
		if err := json.Unmarshal(response.Data, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		return &report, nil
	case StatusFailed:
		return nil, fmt.Errorf("evaluation failed: %s", response.Message)
	default:
		return nil, fmt.Errorf("worker error: %s", response.Message)
	}
}
