package interfaces

import (
	"context"
	"errors"

	"autocare_api/internal/domain/entities"
)

// ErrConcurrentUpdate is returned by a repository when a record kept changing underneath
// an Update and the retry budget ran out.
var ErrConcurrentUpdate = errors.New("concurrent update")

// JobMutator turns the stored job into its next version. Returning an error aborts the
// update and the error is handed back to the caller unchanged.
type JobMutator func(current entities.Job) (entities.Job, error)

// JobFilter narrows List. Empty fields match everything.
type JobFilter struct {
	CustomerID   string
	TechnicianID string
	Status       entities.JobStatus
	Limit        int
}

// IJobRepository abstracts persistence for Job.
//
// Update is an atomic read-modify-write of a single job: the mutator sees the latest
// stored version and the write only lands if nobody changed the job in between. The
// mutator may run more than once. A missing job yields a zero Job and no error, for
// GetByID and Update alike.
type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, id string, mutate JobMutator) (entities.Job, error)
	List(ctx context.Context, filter JobFilter) ([]entities.Job, error)
}
