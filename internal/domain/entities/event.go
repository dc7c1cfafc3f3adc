package entities

import "time"

// JobEvent is pushed to realtime subscribers whenever a job changes.
type JobEvent struct {
	Type    string    `json:"type"`
	Command string    `json:"command,omitempty"`
	JobID   string    `json:"job_id"`
	Status  JobStatus `json:"status"`
	Job     Job       `json:"job"`
	At      time.Time `json:"at"`
}

const (
	JobEventCreated = "job.created"
	JobEventUpdated = "job.updated"
)

// VisibleTo reports whether actor may observe the job: admins see everything, customers
// their own jobs, technicians open jobs and the ones assigned to them.
func (j Job) VisibleTo(actor Actor) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return j.CustomerID == actor.ID
	case RoleTechnician:
		return j.TechnicianID == actor.ID || (j.Status == JobStatusPending && j.TechnicianID == "")
	}
	return false
}
