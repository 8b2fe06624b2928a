package entities

import (
	"encoding/json"
	"time"
)

// AuditEvent is appended to the durable webhook audit stream. Raw payloads
// are recorded before any processing so reconciliation stays diagnosable
// from the event stream alone.
type AuditEvent struct {
	Kind          string          `json:"kind"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Error         string          `json:"error,omitempty"`
	At            time.Time       `json:"at"`
}

const (
	AuditCallbackReceived = "callback_received"
	AuditOrderNotFound    = "order_not_found"
	AuditUnhandledStatus  = "unhandled_status"
	AuditDuplicateEvent   = "duplicate_settlement"
	AuditProcessingError  = "processing_error"
)
