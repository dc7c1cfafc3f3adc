package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome reported by the payment provider for a bill charge.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment records one attempt to settle a job's bill.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI job_id-index: job_id
//
// Online charges keep the provider body (ProviderPayloadRaw) for reconciliation; cash
// payments are recorded when the technician confirms collection.
type Payment struct {
	ID     string        `json:"id"`
	JobID  string        `json:"job_id"`
	Amount float64       `json:"amount"`
	Method PaymentMethod `json:"method"`
	Status PaymentStatus `json:"status"`
	Date   time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
