package lifecycle

import "autocare_api/internal/domain/entities"

type ownership int

const (
	anyActor ownership = iota
	ownerCustomer
	assignedTechnician
	ownerOrAssigned
)

type transition struct {
	// from lists the statuses the command may be issued in; nil means any non-terminal status.
	from  []entities.JobStatus
	roles []entities.Role
	owner ownership
}

var jobTransitions = map[CommandKind]transition{
	KindAccept: {
		from:  statuses(entities.JobStatusPending),
		roles: roles(entities.RoleTechnician),
		owner: anyActor,
	},
	KindArrive: {
		from:  statuses(entities.JobStatusAccepted),
		roles: roles(entities.RoleTechnician),
		owner: assignedTechnician,
	},
	KindSendQuote: {
		from:  statuses(entities.JobStatusArrived),
		roles: roles(entities.RoleTechnician),
		owner: assignedTechnician,
	},
	KindRespondQuote: {
		from:  statuses(entities.JobStatusQuotePending),
		roles: roles(entities.RoleCustomer),
		owner: ownerCustomer,
	},
	KindPartRequest: {
		from:  statuses(entities.JobStatusPartsRequired),
		roles: roles(entities.RoleTechnician),
		owner: assignedTechnician,
	},
	KindSendBill: {
		from: statuses(
			entities.JobStatusAccepted,
			entities.JobStatusArrived,
			entities.JobStatusPartsRequired,
			entities.JobStatusPartsOrdered,
			entities.JobStatusInProgress,
			entities.JobStatusBillingPending,
		),
		roles: roles(entities.RoleTechnician),
		owner: assignedTechnician,
	},
	KindRespondBill: {
		from:  statuses(entities.JobStatusBillingPending),
		roles: roles(entities.RoleCustomer),
		owner: ownerCustomer,
	},
	KindConfirmCash: {
		from:  statuses(entities.JobStatusBillingPending),
		roles: roles(entities.RoleTechnician),
		owner: assignedTechnician,
	},
	KindCancel: {
		roles: roles(entities.RoleCustomer, entities.RoleTechnician),
		owner: ownerOrAssigned,
	},
	KindUpdateStatus: {
		roles: roles(entities.RoleAdmin),
		owner: anyActor,
	},
}

// statusGraph holds the forward edges a generic status update may follow.
// Every non-terminal status may additionally move to cancelled. Statuses that carry a
// payload (accepted, quote_pending, billing_pending) are reached only through their
// command, so they are never edges here.
var statusGraph = map[entities.JobStatus][]entities.JobStatus{
	entities.JobStatusAccepted:       {entities.JobStatusArrived},
	entities.JobStatusQuotePending:   {entities.JobStatusPartsRequired, entities.JobStatusInProgress},
	entities.JobStatusPartsRequired:  {entities.JobStatusPartsOrdered},
	entities.JobStatusPartsOrdered:   {entities.JobStatusInProgress},
	entities.JobStatusBillingPending: {entities.JobStatusCompleted},
}

// ValidTransition reports whether a command may be issued while the job is in fromStatus.
func ValidTransition(kind CommandKind, fromStatus entities.JobStatus) bool {
	if fromStatus.IsTerminal() || !fromStatus.Valid() {
		return false
	}
	t, ok := jobTransitions[kind]
	if !ok {
		return false
	}
	if t.from == nil {
		return true
	}
	for _, status := range t.from {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses a generic update may move a job to from fromStatus.
func NextStatuses(fromStatus entities.JobStatus) []entities.JobStatus {
	if fromStatus.IsTerminal() {
		return nil
	}
	next := append([]entities.JobStatus(nil), statusGraph[fromStatus]...)
	return append(next, entities.JobStatusCancelled)
}

func canReach(from, to entities.JobStatus) bool {
	for _, s := range NextStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}

func checkActor(job entities.Job, kind CommandKind, actor entities.Actor) error {
	if actor.ID == "" {
		return forbidden(string(kind), "missing actor")
	}
	if actor.IsAdmin() {
		return nil
	}
	t := jobTransitions[kind]
	if !hasRole(t.roles, actor.Role) {
		return forbidden(string(kind), "role "+string(actor.Role)+" may not issue it")
	}
	switch t.owner {
	case ownerCustomer:
		if job.CustomerID != actor.ID {
			return forbidden(string(kind), "not the job's customer")
		}
	case assignedTechnician:
		if job.TechnicianID != actor.ID {
			return forbidden(string(kind), "not the assigned technician")
		}
	case ownerOrAssigned:
		if actor.Role == entities.RoleCustomer && job.CustomerID != actor.ID {
			return forbidden(string(kind), "not the job's customer")
		}
		if actor.Role == entities.RoleTechnician && job.TechnicianID != actor.ID {
			return forbidden(string(kind), "not the assigned technician")
		}
	}
	return nil
}

func hasRole(allowed []entities.Role, role entities.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func statuses(s ...entities.JobStatus) []entities.JobStatus { return s }

func roles(r ...entities.Role) []entities.Role { return r }
