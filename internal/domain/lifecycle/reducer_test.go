package lifecycle

import (
	"errors"
	"testing"
	"time"

	"autocare_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	technician = entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
	admin      = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	baseTime   = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

func newPendingJob(t *testing.T) entities.Job {
	t.Helper()
	job, err := NewJob("job-1", CreateJob{VehicleID: "v1", Description: "brake noise", Address: "Main St 10"}, customer, baseTime)
	require.NoError(t, err)
	return job
}

func mustApply(t *testing.T, job entities.Job, cmd Command, actor entities.Actor) entities.Job {
	t.Helper()
	res, err := Apply(job, cmd, actor, baseTime.Add(time.Minute*time.Duration(len(job.History))))
	require.NoError(t, err)
	return res.Job
}

type step struct {
	cmd   Command
	actor entities.Actor
}

// jobIn walks a fresh job along the happy path until it reaches status.
func jobIn(t *testing.T, status entities.JobStatus) entities.Job {
	t.Helper()
	path := []struct {
		reached entities.JobStatus
		next    step
	}{
		{entities.JobStatusPending, step{AcceptJob{TechnicianName: "Ana"}, technician}},
		{entities.JobStatusAccepted, step{ArriveJob{}, technician}},
		{entities.JobStatusArrived, step{SendQuote{Items: []entities.LineItem{{Name: "pads", Total: 500}}, Labor: 200}, technician}},
		{entities.JobStatusQuotePending, step{RespondQuote{Decision: DecisionApprove}, customer}},
		{entities.JobStatusPartsRequired, step{SendBill{Items: []entities.LineItem{{Name: "pads", Total: 500}}, Labor: 250}, technician}},
		{entities.JobStatusBillingPending, step{}},
	}

	job := newPendingJob(t)
	for _, p := range path {
		if job.Status == status {
			return job
		}
		require.Equal(t, p.reached, job.Status)
		require.NotNil(t, p.next.cmd, "no fixture for %s", status)
		job = mustApply(t, job, p.next.cmd, p.next.actor)
	}
	t.Fatalf("no fixture for %s", status)
	return job
}

func TestNewJob(t *testing.T) {
	t.Run("creates pending job", func(t *testing.T) {
		job := newPendingJob(t)
		assert.Equal(t, entities.JobStatusPending, job.Status)
		assert.Equal(t, "cust-1", job.CustomerID)
		assert.Equal(t, "v1", job.VehicleID)
		require.Len(t, job.History, 1)
		assert.Equal(t, string(KindCreate), job.History[0].Command)
		assert.Equal(t, entities.JobStatusPending, job.History[0].To)
	})

	t.Run("requires vehicle and description", func(t *testing.T) {
		_, err := NewJob("job-1", CreateJob{Description: "x"}, customer, baseTime)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "vehicle_id", verr.Field)

		_, err = NewJob("job-1", CreateJob{VehicleID: "v1", Description: "  "}, customer, baseTime)
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "description", verr.Field)
	})

	t.Run("technicians cannot create jobs", func(t *testing.T) {
		_, err := NewJob("job-1", CreateJob{VehicleID: "v1", Description: "x"}, technician, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestApply_QuoteScenario(t *testing.T) {
	job := newPendingJob(t)

	job = mustApply(t, job, AcceptJob{TechnicianName: "Ana", GarageName: "Ana's Garage"}, technician)
	assert.Equal(t, entities.JobStatusAccepted, job.Status)
	assert.Equal(t, "tech-1", job.TechnicianID)
	assert.Equal(t, "Ana's Garage", job.GarageName)

	job = mustApply(t, job, ArriveJob{}, technician)
	assert.Equal(t, entities.JobStatusArrived, job.Status)

	job = mustApply(t, job, SendQuote{Items: []entities.LineItem{{Total: 500}}, Labor: 200}, technician)
	assert.Equal(t, entities.JobStatusQuotePending, job.Status)
	require.NotNil(t, job.Quote)
	assert.Equal(t, 700.0, job.Quote.TotalAmount)
	assert.Equal(t, entities.ChargeStatusPending, job.Quote.Status)

	job = mustApply(t, job, RespondQuote{Decision: DecisionApprove}, customer)
	assert.Equal(t, entities.JobStatusPartsRequired, job.Status)
	assert.Equal(t, entities.PartsSourceTechnician, job.PartsSource)
	assert.Equal(t, entities.ChargeStatusApproved, job.Quote.Status)

	assert.Zero(t, VerifyHistory(job))
	assert.Len(t, job.History, 5)
}

func TestApply_RespondQuote(t *testing.T) {
	t.Run("customer parts go straight to work", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusQuotePending)
		job = mustApply(t, job, RespondQuote{Decision: DecisionApprove, PartsSource: entities.PartsSourceCustomer}, customer)
		assert.Equal(t, entities.JobStatusInProgress, job.Status)
		assert.Equal(t, entities.PartsSourceCustomer, job.PartsSource)
	})

	t.Run("reject cancels the job", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusQuotePending)
		job = mustApply(t, job, RespondQuote{Decision: DecisionReject}, customer)
		assert.Equal(t, entities.JobStatusCancelled, job.Status)
		assert.Equal(t, entities.ChargeStatusRejected, job.Quote.Status)
	})

	t.Run("unknown decision", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusQuotePending)
		_, err := Apply(job, RespondQuote{Decision: "maybe"}, customer, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusQuotePending)
		other := entities.Actor{ID: "cust-2", Role: entities.RoleCustomer}
		_, err := Apply(job, RespondQuote{Decision: DecisionApprove}, other, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestApply_SendQuoteValidation(t *testing.T) {
	job := jobIn(t, entities.JobStatusArrived)

	_, err := Apply(job, SendQuote{Labor: 100}, technician, baseTime)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)

	_, err = Apply(job, SendQuote{Items: []entities.LineItem{{Total: -1}}}, technician, baseTime)
	assert.ErrorIs(t, err, ErrValidation)

	res, err := Apply(job, SendQuote{Items: []entities.LineItem{{Name: "oil", Quantity: 3, UnitPrice: 12.5}}, Labor: 40}, technician, baseTime)
	require.NoError(t, err)
	assert.Equal(t, 37.5, res.Job.Quote.Items[0].Total)
	assert.Equal(t, 77.5, res.Job.Quote.TotalAmount)
}

func TestApply_SubmitPartRequest(t *testing.T) {
	job := jobIn(t, entities.JobStatusPartsRequired)

	res, err := Apply(job, SubmitPartRequest{
		OrderID:    "ord-1",
		SupplierID: "sup-1",
		Items:      []entities.OrderItem{{Name: "pads", Quantity: 2, UnitPrice: 40}},
		Urgency:    entities.UrgencyUrgent,
	}, technician, baseTime)
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusPartsOrdered, res.Job.Status)
	assert.Equal(t, "ord-1", res.Job.PartsOrderID)
	require.NotNil(t, res.Order)
	assert.Equal(t, entities.OrderTypeWholesale, res.Order.Type)
	assert.Equal(t, "tech-1", res.Order.RequesterID)
	assert.Equal(t, "job-1", res.Order.JobID)
	assert.Equal(t, "Main St 10", res.Order.Location)
	assert.Equal(t, 80.0, res.Order.Amount)
	assert.Equal(t, entities.OrderStatusPending, res.Order.Status)

	_, err = Apply(job, SubmitPartRequest{OrderID: "ord-1", SupplierID: "sup-1"}, technician, baseTime)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApply_Billing(t *testing.T) {
	t.Run("online approval completes the job", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		assert.Equal(t, 750.0, job.Bill.TotalAmount)

		res, err := Apply(job, RespondBill{Decision: DecisionApprove, PaymentMethod: entities.PaymentMethodOnline, PaymentReference: "mp-1"}, customer, baseTime)
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusCompleted, res.Job.Status)
		assert.Equal(t, entities.ChargeStatusPaid, res.Job.Bill.Status)
		assert.Equal(t, "mp-1", res.Job.Bill.PaymentReference)
		require.NotNil(t, res.Job.CompletedAt)
		assert.False(t, res.Job.CompletedAt.IsZero())
	})

	t.Run("online approval needs a payment reference", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		_, err := Apply(job, RespondBill{Decision: DecisionApprove, PaymentMethod: entities.PaymentMethodOnline}, customer, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("cash approval waits for collection", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		job = mustApply(t, job, RespondBill{Decision: DecisionApprove, PaymentMethod: entities.PaymentMethodCash}, customer)
		assert.Equal(t, entities.JobStatusBillingPending, job.Status)
		assert.Equal(t, entities.ChargeStatusPending, job.Bill.Status)
		assert.Equal(t, entities.PaymentMethodCash, job.Bill.PaymentMethod)
		assert.Nil(t, job.CompletedAt)

		job = mustApply(t, job, ConfirmCashPayment{}, technician)
		assert.Equal(t, entities.JobStatusCompleted, job.Status)
		assert.Equal(t, entities.ChargeStatusPaid, job.Bill.Status)
		assert.NotNil(t, job.Bill.PaidAt)
	})

	t.Run("cash confirmation needs a cash approval", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		_, err := Apply(job, ConfirmCashPayment{}, technician, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejected bill can be reissued", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		job = mustApply(t, job, RespondBill{Decision: DecisionReject}, customer)
		assert.Equal(t, entities.JobStatusBillingPending, job.Status)
		assert.Equal(t, entities.ChargeStatusRejected, job.Bill.Status)

		_, err := Apply(job, RespondBill{Decision: DecisionApprove, PaymentMethod: entities.PaymentMethodCash}, customer, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		job = mustApply(t, job, SendBill{Items: []entities.LineItem{{Total: 400}}, Labor: 100}, technician)
		assert.Equal(t, entities.ChargeStatusPending, job.Bill.Status)
		assert.Equal(t, 500.0, job.Bill.TotalAmount)
	})

	t.Run("pending bill cannot be replaced", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		_, err := Apply(job, SendBill{Labor: 10}, technician, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("bill from accepted", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusAccepted)
		job = mustApply(t, job, SendBill{Labor: 80}, technician)
		assert.Equal(t, entities.JobStatusBillingPending, job.Status)
		assert.Equal(t, 80.0, job.Bill.TotalAmount)
	})

	t.Run("no bill while quote pending", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusQuotePending)
		_, err := Apply(job, SendBill{Labor: 80}, technician, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestApply_AcceptTwiceIsRejected(t *testing.T) {
	job := jobIn(t, entities.JobStatusAccepted)
	other := entities.Actor{ID: "tech-2", Role: entities.RoleTechnician}

	_, err := Apply(job, AcceptJob{}, other, baseTime)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, string(KindAccept), terr.Command)
	assert.Equal(t, string(entities.JobStatusAccepted), terr.From)
	assert.Equal(t, "tech-1", job.TechnicianID)
}

func TestApply_TerminalStatesRejectEverything(t *testing.T) {
	cancelled := mustApply(t, newPendingJob(t), CancelJob{Reason: "sold the car"}, customer)
	assert.Equal(t, "sold the car", cancelled.CancelReason)

	completed := jobIn(t, entities.JobStatusBillingPending)
	completed = mustApply(t, completed, RespondBill{Decision: DecisionApprove, PaymentMethod: entities.PaymentMethodOnline, PaymentReference: "mp-9"}, customer)

	commands := []Command{
		AcceptJob{}, ArriveJob{}, SendQuote{Items: []entities.LineItem{{Total: 1}}},
		RespondQuote{Decision: DecisionApprove}, SubmitPartRequest{OrderID: "o", SupplierID: "s"},
		SendBill{Labor: 1}, RespondBill{Decision: DecisionReject}, ConfirmCashPayment{},
		CancelJob{}, UpdateStatus{Target: entities.JobStatusCancelled},
	}
	for _, job := range []entities.Job{cancelled, completed} {
		for _, cmd := range commands {
			_, err := Apply(job, cmd, admin, baseTime)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", cmd.Kind(), job.Status)
		}
	}
}

func TestApply_CommandsOutsideTheTable(t *testing.T) {
	job := newPendingJob(t)
	for _, cmd := range []Command{
		ArriveJob{},
		SendQuote{Items: []entities.LineItem{{Total: 1}}},
		RespondQuote{Decision: DecisionApprove},
		SubmitPartRequest{OrderID: "o", SupplierID: "s"},
		SendBill{Labor: 1},
		RespondBill{Decision: DecisionReject},
		ConfirmCashPayment{},
	} {
		_, err := Apply(job, cmd, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s from pending", cmd.Kind())
	}

	_, err := Apply(job, CreateJob{VehicleID: "v", Description: "d"}, customer, baseTime)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApply_Cancel(t *testing.T) {
	t.Run("assigned technician may cancel", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusArrived)
		job = mustApply(t, job, CancelJob{Reason: "no parts"}, technician)
		assert.Equal(t, entities.JobStatusCancelled, job.Status)
	})

	t.Run("unrelated technician may not", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusArrived)
		_, err := Apply(job, CancelJob{}, entities.Actor{ID: "tech-2", Role: entities.RoleTechnician}, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("suppliers may not", func(t *testing.T) {
		_, err := Apply(newPendingJob(t), CancelJob{}, entities.Actor{ID: "sup-1", Role: entities.RoleSupplier}, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestApply_UpdateStatus(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusPartsRequired)
		_, err := Apply(job, UpdateStatus{Target: entities.JobStatusPartsOrdered}, technician, baseTime)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		_, err := Apply(newPendingJob(t), UpdateStatus{Target: entities.JobStatusCompleted}, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("no going back", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusArrived)
		_, err := Apply(job, UpdateStatus{Target: entities.JobStatusPending}, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("payload statuses need their command", func(t *testing.T) {
		_, err := Apply(newPendingJob(t), UpdateStatus{Target: entities.JobStatusAccepted}, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		job := jobIn(t, entities.JobStatusArrived)
		_, err = Apply(job, UpdateStatus{Target: entities.JobStatusQuotePending}, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = Apply(job, UpdateStatus{Target: entities.JobStatusBillingPending}, admin, baseTime)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("every advertised target is reachable", func(t *testing.T) {
		for _, status := range []entities.JobStatus{
			entities.JobStatusPending,
			entities.JobStatusAccepted,
			entities.JobStatusArrived,
			entities.JobStatusQuotePending,
			entities.JobStatusPartsRequired,
			entities.JobStatusBillingPending,
		} {
			job := jobIn(t, status)
			for _, target := range NextStatuses(status) {
				_, err := Apply(job, UpdateStatus{Target: target}, admin, baseTime)
				assert.NoError(t, err, "%s -> %s", status, target)
			}
		}
	})

	t.Run("completing marks the bill paid", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusBillingPending)
		job = mustApply(t, job, UpdateStatus{Target: entities.JobStatusCompleted}, admin)
		assert.Equal(t, entities.JobStatusCompleted, job.Status)
		assert.Equal(t, entities.ChargeStatusPaid, job.Bill.Status)
		assert.NotNil(t, job.CompletedAt)
	})

	t.Run("forward edge", func(t *testing.T) {
		job := jobIn(t, entities.JobStatusPartsRequired)
		job = mustApply(t, job, UpdateStatus{Target: entities.JobStatusPartsOrdered}, admin)
		assert.Equal(t, entities.JobStatusPartsOrdered, job.Status)
		last := job.History[len(job.History)-1]
		assert.Equal(t, entities.JobStatusPartsRequired, last.From)
		assert.Equal(t, entities.JobStatusPartsOrdered, last.To)
		assert.Equal(t, entities.RoleAdmin, last.ActorRole)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := Apply(newPendingJob(t), UpdateStatus{Target: "done"}, admin, baseTime)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	job := jobIn(t, entities.JobStatusQuotePending)
	before := job.Clone()

	_, err := Apply(job, RespondQuote{Decision: DecisionReject}, customer, baseTime)
	require.NoError(t, err)
	assert.Equal(t, before, job)
}

func TestApply_TotalsProperty(t *testing.T) {
	cases := []struct {
		items []entities.LineItem
		labor float64
	}{
		{items: []entities.LineItem{{Total: 500}}, labor: 200},
		{items: []entities.LineItem{{Total: 0.1}, {Total: 0.2}}, labor: 0},
		{items: []entities.LineItem{{Quantity: 4, UnitPrice: 19.99}, {Total: 5}}, labor: 33.33},
	}
	for _, tc := range cases {
		job := jobIn(t, entities.JobStatusArrived)
		job = mustApply(t, job, SendQuote{Items: tc.items, Labor: tc.labor}, technician)
		sum := job.Quote.LaborAmount
		for _, it := range job.Quote.Items {
			sum += it.Total
		}
		assert.InDelta(t, sum, job.Quote.TotalAmount, 0.005)

		job = mustApply(t, job, RespondQuote{Decision: DecisionApprove, PartsSource: entities.PartsSourceCustomer}, customer)
		job = mustApply(t, job, SendBill{Items: tc.items, Labor: tc.labor}, technician)
		assert.Equal(t, job.Quote.TotalAmount, job.Bill.TotalAmount)
	}
}

func TestVerifyHistory_DetectsTampering(t *testing.T) {
	job := jobIn(t, entities.JobStatusQuotePending)
	require.Zero(t, VerifyHistory(job))

	tampered := job.Clone()
	tampered.History[1].To = entities.JobStatusCompleted
	assert.Equal(t, 2, VerifyHistory(tampered))

	dropped := job.Clone()
	dropped.History = append(dropped.History[:1], dropped.History[2:]...)
	assert.Equal(t, 3, VerifyHistory(dropped))
}

func TestNextStatuses(t *testing.T) {
	assert.Nil(t, NextStatuses(entities.JobStatusCompleted))
	assert.ElementsMatch(t,
		[]entities.JobStatus{entities.JobStatusInProgress, entities.JobStatusCancelled},
		NextStatuses(entities.JobStatusPartsOrdered))
	assert.Equal(t, []entities.JobStatus{entities.JobStatusCancelled}, NextStatuses(entities.JobStatusInProgress))
	assert.NotContains(t, NextStatuses(entities.JobStatusArrived), entities.JobStatusBillingPending)
	assert.True(t, errors.Is(&TransitionError{}, ErrInvalidTransition))
}
