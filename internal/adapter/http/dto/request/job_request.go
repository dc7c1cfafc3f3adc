package request

import (
	"encoding/json"
	"errors"
	"strings"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
)

var ErrInvalidDecision = errors.New("response must be approve or reject")

type CreateJobRequest struct {
	VehicleID     string   `json:"vehicle_id" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Address       string   `json:"address"`
	CustomerPhone string   `json:"customer_phone"`
	Photos        []string `json:"photos"`
	VoiceNote     string   `json:"voice_note"`
}

func (r CreateJobRequest) ToCommand() lifecycle.CreateJob {
	return lifecycle.CreateJob{
		VehicleID:     r.VehicleID,
		Description:   r.Description,
		Address:       r.Address,
		CustomerPhone: r.CustomerPhone,
		Photos:        r.Photos,
		VoiceNote:     r.VoiceNote,
	}
}

type AcceptJobRequest struct {
	TechnicianName string `json:"technician_name"`
	GarageName     string `json:"garage_name"`
}

func (r AcceptJobRequest) ToCommand() lifecycle.AcceptJob {
	return lifecycle.AcceptJob{TechnicianName: r.TechnicianName, GarageName: r.GarageName}
}

type LineItemRequest struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

func toLineItems(in []LineItemRequest) []entities.LineItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice, Total: it.Total})
	}
	return out
}

// ChargeRequest is the body of both "send quote" and "send bill".
type ChargeRequest struct {
	Items       []LineItemRequest `json:"items"`
	LaborAmount float64           `json:"labor_amount"`
}

func (r ChargeRequest) ToQuote() lifecycle.SendQuote {
	return lifecycle.SendQuote{Items: toLineItems(r.Items), Labor: r.LaborAmount}
}

func (r ChargeRequest) ToBill() lifecycle.SendBill {
	return lifecycle.SendBill{Items: toLineItems(r.Items), Labor: r.LaborAmount}
}

type QuoteResponseRequest struct {
	Response    string `json:"response" binding:"required"`
	PartsSource string `json:"parts_source"`
}

func (r QuoteResponseRequest) ToCommand() (lifecycle.RespondQuote, error) {
	decision, err := ParseDecision(r.Response)
	if err != nil {
		return lifecycle.RespondQuote{}, err
	}
	return lifecycle.RespondQuote{
		Decision:    decision,
		PartsSource: entities.PartsSource(strings.ToLower(strings.TrimSpace(r.PartsSource))),
	}, nil
}

// BillResponseRequest answers a bill. For online payment, payment_payload is handed to
// the payment provider as-is (Mercado Pago payment request schema); mp_payload is
// accepted as an alias.
type BillResponseRequest struct {
	Response       string          `json:"response" binding:"required"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentPayload json.RawMessage `json:"payment_payload,omitempty" swaggertype:"object"`
	MPPayload      json.RawMessage `json:"mp_payload,omitempty" swaggertype:"object"`
}

func (r BillResponseRequest) ToCommand() (lifecycle.RespondBill, json.RawMessage, error) {
	decision, err := ParseDecision(r.Response)
	if err != nil {
		return lifecycle.RespondBill{}, nil, err
	}
	payload := r.PaymentPayload
	if len(payload) == 0 || string(payload) == "null" {
		payload = r.MPPayload
	}
	if string(payload) == "null" {
		payload = nil
	}
	return lifecycle.RespondBill{
		Decision:      decision,
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
	}, payload, nil
}

type OrderItemRequest struct {
	Name       string  `json:"name"`
	PartNumber string  `json:"part_number"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

func toOrderItems(in []OrderItemRequest) []entities.OrderItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.OrderItem{Name: it.Name, PartNumber: it.PartNumber, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

type PartRequestRequest struct {
	SupplierID string             `json:"supplier_id" binding:"required"`
	Items      []OrderItemRequest `json:"items"`
	Urgency    string             `json:"urgency"`
	Location   string             `json:"location"`
}

// ToCommand leaves OrderID empty; the use case assigns it.
func (r PartRequestRequest) ToCommand() lifecycle.SubmitPartRequest {
	return lifecycle.SubmitPartRequest{
		SupplierID: r.SupplierID,
		Items:      toOrderItems(r.Items),
		Urgency:    entities.Urgency(strings.ToLower(strings.TrimSpace(r.Urgency))),
		Location:   r.Location,
	}
}

type CancelJobRequest struct {
	Reason string `json:"reason"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type JobListQuery struct {
	Status       string `form:"status"`
	CustomerID   string `form:"customer_id"`
	TechnicianID string `form:"technician_id"`
	Limit        int    `form:"limit"`
}

// ParseDecision accepts approve/reject and their common spellings.
func ParseDecision(v string) (lifecycle.Decision, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "approve", "approved", "accept", "accepted":
		return lifecycle.DecisionApprove, nil
	case "reject", "rejected", "decline", "declined":
		return lifecycle.DecisionReject, nil
	}
	return "", ErrInvalidDecision
}
