// Package worker runs the queue consumer: one evaluation request at a time,
// pulled from the broker, answered with exactly one response envelope.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkravets/resume-evaluator/internal/evaluation"
	"github.com/mkravets/resume-evaluator/internal/queue"
	"github.com/mkravets/resume-evaluator/internal/types"
)

// Evaluator produces a combined report for one vacancy/resume pair.
type Evaluator interface {
	Evaluate(ctx context.Context, vacancyText, resumeText string) (*types.CombinedReport, error)
}

// ReportStore persists finished reports. Persistence is best-effort: the
// worker replies even when saving fails.
type ReportStore interface {
	SaveReport(ctx context.Context, vacancyText, resumeText string, report *types.CombinedReport) (uuid.UUID, error)
}

// Worker consumes one request at a time from a queue and replies through
// the broker.
type Worker struct {
	broker    queue.Broker
	evaluator Evaluator
	store     ReportStore
	queueName string
	log       *zap.Logger
}

// New creates a worker. The store may be nil; reports are then not
// persisted.
func New(broker queue.Broker, evaluator Evaluator, store ReportStore, queueName string, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{
		broker:    broker,
		evaluator: evaluator,
		store:     store,
		queueName: queueName,
		log:       log,
	}
}

// Run consumes requests until the context is canceled. A request is
// acknowledged only after its response has been published; requests that
// cannot be parsed at all are dropped with a log line, since they carry no
// usable reply destination.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("worker started", zap.String("queue", w.queueName))
	for {
		delivery, err := w.broker.Receive(ctx, w.queueName)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.log.Info("worker stopped")
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}
		w.handle(ctx, delivery)
	}
}

func (w *Worker) handle(ctx context.Context, delivery *queue.Delivery) {
	var envelope queue.Envelope
	if err := json.Unmarshal(delivery.Body, &envelope); err != nil || envelope.ReplyTo == "" {
		w.log.Error("dropping unparseable request", zap.Error(err))
		w.ack(ctx, delivery)
		return
	}

	w.log.Info("processing request", zap.String("correlation_id", envelope.CorrelationID))
	response := w.process(ctx, envelope)

	payload, err := json.Marshal(response)
	if err != nil {
		w.log.Error("marshal response", zap.Error(err))
		w.ack(ctx, delivery)
		return
	}
	if err := w.broker.Reply(ctx, envelope.ReplyTo, payload, queue.ReplyTTL); err != nil {
		w.log.Error("publish response", zap.Error(err))
		// Leave the request on the processing list; a restarted worker or
		// an operator can still see it.
		return
	}
	w.ack(ctx, delivery)
}

// process runs the evaluation and shapes the outcome into a response
// envelope. A panic anywhere below becomes an error envelope, never a lost
// request.
func (w *Worker) process(ctx context.Context, envelope queue.Envelope) (response queue.Response) {
	response = queue.Response{CorrelationID: envelope.CorrelationID}

	defer func() {
		if r := recover(); r != nil {
			w.log.Error("evaluation panicked", zap.Any("panic", r),
				zap.String("correlation_id", envelope.CorrelationID))
			response.Status = queue.StatusError
			response.Data = nil
			response.Message = fmt.Sprintf("internal error: %v", r)
		}
	}()

	report, err := w.evaluator.Evaluate(ctx, envelope.Request.VacancyText, envelope.Request.ResumeText)
	switch {
	case errors.Is(err, evaluation.ErrEmptyInput):
		response.Status = queue.StatusError
		response.Message = err.Error()
	case err != nil:
		response.Status = queue.StatusFailed
		response.Message = err.Error()
	default:
		data, marshalErr := json.Marshal(report)
		if marshalErr != nil {
			response.Status = queue.StatusError
			response.Message = fmt.Sprintf("marshal report: %v", marshalErr)
			return response
		}
		response.Status = queue.StatusSuccess
		response.Data = data
		w.persist(ctx, envelope.Request, report)
	}
	return response
}

func (w *Worker) persist(ctx context.Context, request queue.Request, report *types.CombinedReport) {
	if w.store == nil {
		return
	}
	runID, err := w.store.SaveReport(ctx, request.VacancyText, request.ResumeText, report)
	if err != nil {
		w.log.Warn("report not persisted", zap.Error(err))
		return
	}
	w.log.Info("report persisted", zap.String("run_id", runID.String()))
}

func (w *Worker) ack(ctx context.Context, delivery *queue.Delivery) {
	if err := delivery.Ack(ctx); err != nil {
		w.log.Warn("ack failed", zap.Error(err))
	}
}
