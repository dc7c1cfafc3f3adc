package interfaces

import (
	"context"

	"autocare_api/internal/domain/entities"
)

// IJobEventPublisher fans job changes out to live subscribers. Publishing never blocks
// the caller on slow subscribers.
type IJobEventPublisher interface {
	Publish(ctx context.Context, event entities.JobEvent)
}
