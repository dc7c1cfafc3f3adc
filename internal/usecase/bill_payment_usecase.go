package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound                = fmt.Errorf("payment %w", lifecycle.ErrNotFound)
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentNotApproved             = errors.New("payment not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillPaymentUseCase settles job bills and keeps the payment ledger.
//
// ChargeOnline only charges and records; moving the job to completed is the job use
// case's business once the charge came back approved.
type IBillPaymentUseCase interface {
	ChargeOnline(ctx context.Context, job entities.Job, payload json.RawMessage) (entities.Payment, error)
	RecordCash(ctx context.Context, job entities.Job) (entities.Payment, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, actor entities.Actor, jobID string) ([]entities.Payment, error)
}

type BillPaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	jobRepo interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
}

var _ IBillPaymentUseCase = (*BillPaymentUseCase)(nil)

func NewBillPaymentUseCase(repo interfaces.IPaymentRepository, jobRepo interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *BillPaymentUseCase {
	return &BillPaymentUseCase{repo: repo, jobRepo: jobRepo, gateway: gateway}
}

func (u *BillPaymentUseCase) ChargeOnline(ctx context.Context, job entities.Job, payload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] charge start job_id=%s payload_len=%d", job.ID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	if job.ID == "" {
		return entities.Payment{}, ErrJobNotFound
	}
	if !lifecycle.Chargeable(job) {
		log.Printf("[payment][usecase] no pending bill job_id=%s", job.ID)
		return entities.Payment{}, &lifecycle.TransitionError{Command: string(lifecycle.KindRespondBill), From: string(job.Status), Reason: "no pending bill"}
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload job_id=%s", job.ID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured job_id=%s", job.ID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	amount := job.Bill.TotalAmount

	// Mercado Pago uses external_reference to reconcile webhooks with the job.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil && reqMap != nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id job_id=%s", job.ID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer job_id=%s", job.ID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = job.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Service job %s", job.ID)
		}
		// The bill is the source of truth for the amount, never the client.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
			log.Printf("[payment][usecase] payload enriched job_id=%s payload_len=%d", job.ID, len(payload))
		}
	} else if !mockMode {
		log.Printf("[payment][usecase] payload is not an object job_id=%s", job.ID)
		return entities.Payment{}, ErrInvalidPaymentPayload
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed job_id=%s err=%v", job.ID, err)
		return entities.Payment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success job_id=%s provider_payment_id=%s provider_status=%s", job.ID, providerPaymentID, providerStatus)

	var parsed map[string]any
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Printf("[payment][usecase] provider response unmarshal failed job_id=%s err=%v", job.ID, err)
		}
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		JobID:              job.ID,
		Amount:             amount,
		Method:             entities.PaymentMethodOnline,
		Status:             paymentStatusFromProvider(providerStatus),
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed job_id=%s payment_id=%s err=%v", job.ID, p.ID, err)
		return entities.Payment{}, err
	}
	if created.Status != entities.PaymentStatusApproved {
		log.Printf("[payment][usecase] charge not approved job_id=%s payment_id=%s status=%s", job.ID, created.ID, created.Status)
		return created, ErrPaymentNotApproved
	}
	log.Printf("[payment][usecase] charge success job_id=%s payment_id=%s amount=%.2f", job.ID, created.ID, created.Amount)
	return created, nil
}

func (u *BillPaymentUseCase) RecordCash(ctx context.Context, job entities.Job) (entities.Payment, error) {
	if job.ID == "" || job.Bill == nil {
		return entities.Payment{}, ErrJobNotFound
	}
	p := entities.Payment{
		ID:     uuid.NewString(),
		JobID:  job.ID,
		Amount: job.Bill.TotalAmount,
		Method: entities.PaymentMethodCash,
		Status: entities.PaymentStatusApproved,
		Date:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] cash record failed job_id=%s err=%v", job.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] cash recorded job_id=%s payment_id=%s amount=%.2f", job.ID, created.ID, created.Amount)
	return created, nil
}

func (u *BillPaymentUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if _, err := u.visibleJob(ctx, actor, p.JobID); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (u *BillPaymentUseCase) ListByJobID(ctx context.Context, actor entities.Actor, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	if _, err := u.visibleJob(ctx, actor, jobID); err != nil {
		return nil, err
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *BillPaymentUseCase) visibleJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !job.VisibleTo(actor) {
		return entities.Job{}, ErrNotVisible
	}
	return job, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
