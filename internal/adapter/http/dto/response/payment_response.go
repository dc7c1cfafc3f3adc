package response

import (
	"time"

	"autocare_api/internal/domain/entities"
)

type PaymentResponse struct {
	ID     string    `json:"id"`
	JobID  string    `json:"job_id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		JobID:              p.JobID,
		Amount:             p.Amount,
		Method:             string(p.Method),
		Status:             string(p.Status),
		Date:               p.Date,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
