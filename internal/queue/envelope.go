// Package queue carries evaluation requests and responses over a message
// broker. Requests are pushed to a named queue; each carries a correlation
// id and a reply destination, and the worker publishes exactly one response
// envelope there.
package queue

import "encoding/json"

// ResponseStatus classifies a response envelope.
type ResponseStatus string

// Response statuses. Failed means the evaluation ran and could not produce
// a complete report; Error means the request never got a proper evaluation
// (malformed payload, panic, infrastructure fault).
const (
	StatusSuccess ResponseStatus = "success"
	StatusFailed  ResponseStatus = "failed"
	StatusError   ResponseStatus = "error"
)

// Request is the evaluation request payload.
type Request struct {
	VacancyText string `json:"vacancy_text"`
	ResumeText  string `json:"resume_text"`
}

// Envelope wraps a request with its routing metadata.
type Envelope struct {
	CorrelationID string  `json:"correlation_id"`
	ReplyTo       string  `json:"reply_to"`
	Request       Request `json:"request"`
}

// Response is the reply envelope. Data holds the combined report JSON on
// success; Message explains failed and error statuses.
type Response struct {
	CorrelationID string          `json:"correlation_id"`
	Status        ResponseStatus  `json:"status"`
	Data          json.RawMessage `json:"data,omitempty"`
	Message       string          `json:"message,omitempty"`
}
