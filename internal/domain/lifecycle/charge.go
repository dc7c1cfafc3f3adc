package lifecycle

import (
	"time"

	"autocare_api/internal/domain/entities"
)

// ReserveOnlineCharge claims the pending bill for an online payment. While the bill is
// charging, other responses to it are refused and only the settling RespondBill, which
// carries the provider payment id, may complete the job. Status and history are unchanged.
func ReserveOnlineCharge(job entities.Job, cmd RespondBill, actor entities.Actor, now time.Time) (entities.Job, error) {
	if cmd.Decision != DecisionApprove || cmd.PaymentMethod != entities.PaymentMethodOnline {
		return entities.Job{}, invalid("payment_method", "only an online approval reserves a charge")
	}
	cmd.PaymentReference = ""
	if err := check(job, cmd, actor); err != nil {
		return entities.Job{}, err
	}
	next := job.Clone()
	next.Bill.Status = entities.ChargeStatusCharging
	next.Bill.PaymentMethod = entities.PaymentMethodOnline
	next.UpdatedAt = now.UTC()
	return next, nil
}

// ReleaseOnlineCharge returns a charging bill to pending after the provider refused or
// failed the payment.
func ReleaseOnlineCharge(job entities.Job, now time.Time) (entities.Job, error) {
	if !chargeInFlight(job) {
		return entities.Job{}, &TransitionError{Command: string(KindRespondBill), From: string(job.Status), Reason: "no bill payment in progress"}
	}
	next := job.Clone()
	next.Bill.Status = entities.ChargeStatusPending
	next.Bill.PaymentMethod = ""
	next.UpdatedAt = now.UTC()
	return next, nil
}

// Chargeable reports whether the job's bill may be sent to the payment provider.
func Chargeable(job entities.Job) bool {
	if job.Bill == nil {
		return false
	}
	return job.Bill.Status == entities.ChargeStatusPending || job.Bill.Status == entities.ChargeStatusCharging
}

func chargeInFlight(job entities.Job) bool {
	return job.Bill != nil && job.Bill.Status == entities.ChargeStatusCharging
}

// KindPartRequestReverted labels the history entry of a part request whose order was
// never stored. It is not a command and has no transition entry.
const KindPartRequestReverted CommandKind = "part_request_reverted"

// RevertPartRequest moves the job back to parts_required when the order raised by its
// part request could not be stored. It refuses once the job no longer waits for orderID.
func RevertPartRequest(job entities.Job, orderID string, actor entities.Actor, now time.Time) (entities.Job, error) {
	if job.Status != entities.JobStatusPartsOrdered || job.PartsOrderID != orderID {
		return entities.Job{}, &TransitionError{Command: string(KindPartRequestReverted), From: string(job.Status), Reason: "job is not waiting for order " + orderID}
	}
	now = now.UTC()
	next := job.Clone()
	next.Status = entities.JobStatusPartsRequired
	next.PartsOrderID = ""
	next.UpdatedAt = now
	appendHistory(&next, KindPartRequestReverted, job.Status, actor, "order not stored", now)
	return next, nil
}
