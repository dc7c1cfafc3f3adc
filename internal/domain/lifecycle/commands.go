package lifecycle

import "autocare_api/internal/domain/entities"

// CommandKind identifies a job command in the transition table and in the history.
type CommandKind string

const (
	KindCreate       CommandKind = "create"
	KindAccept       CommandKind = "accept"
	KindArrive       CommandKind = "arrive"
	KindSendQuote    CommandKind = "send_quote"
	KindRespondQuote CommandKind = "respond_quote"
	KindPartRequest  CommandKind = "part_request"
	KindSendBill     CommandKind = "send_bill"
	KindRespondBill  CommandKind = "respond_bill"
	KindConfirmCash  CommandKind = "confirm_cash"
	KindCancel       CommandKind = "cancel"
	KindUpdateStatus CommandKind = "update_status"
)

// Command is implemented only by the job commands of this package.
type Command interface {
	Kind() CommandKind
	sealed()
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type CreateJob struct {
	VehicleID     string
	Description   string
	Address       string
	CustomerPhone string
	Photos        []string
	VoiceNote     string
}

type AcceptJob struct {
	TechnicianName string
	GarageName     string
}

type ArriveJob struct{}

type SendQuote struct {
	Items []entities.LineItem
	Labor float64
}

// RespondQuote approves or rejects the pending quote. PartsSource defaults to
// technician, which sends the job to parts_required.
type RespondQuote struct {
	Decision    Decision
	PartsSource entities.PartsSource
}

// SubmitPartRequest raises a wholesale supplier order for the job. OrderID is
// generated by the caller so the reducer stays deterministic.
type SubmitPartRequest struct {
	OrderID    string
	SupplierID string
	Items      []entities.OrderItem
	Urgency    entities.Urgency
	Location   string
}

type SendBill struct {
	Items []entities.LineItem
	Labor float64
}

// RespondBill resolves the pending bill. PaymentReference carries the provider
// payment id once an online charge has gone through.
type RespondBill struct {
	Decision         Decision
	PaymentMethod    entities.PaymentMethod
	PaymentReference string
}

type ConfirmCashPayment struct{}

type CancelJob struct {
	Reason string
}

type UpdateStatus struct {
	Target entities.JobStatus
}

func (CreateJob) Kind() CommandKind          { return KindCreate }
func (AcceptJob) Kind() CommandKind          { return KindAccept }
func (ArriveJob) Kind() CommandKind          { return KindArrive }
func (SendQuote) Kind() CommandKind          { return KindSendQuote }
func (RespondQuote) Kind() CommandKind       { return KindRespondQuote }
func (SubmitPartRequest) Kind() CommandKind  { return KindPartRequest }
func (SendBill) Kind() CommandKind           { return KindSendBill }
func (RespondBill) Kind() CommandKind        { return KindRespondBill }
func (ConfirmCashPayment) Kind() CommandKind { return KindConfirmCash }
func (CancelJob) Kind() CommandKind          { return KindCancel }
func (UpdateStatus) Kind() CommandKind       { return KindUpdateStatus }

func (CreateJob) sealed()          {}
func (AcceptJob) sealed()          {}
func (ArriveJob) sealed()          {}
func (SendQuote) sealed()          {}
func (RespondQuote) sealed()       {}
func (SubmitPartRequest) sealed()  {}
func (SendBill) sealed()           {}
func (RespondBill) sealed()        {}
func (ConfirmCashPayment) sealed() {}
func (CancelJob) sealed()          {}
func (UpdateStatus) sealed()       {}
