package lifecycle

import (
	"crypto/sha256"
	"fmt"
	"time"

	"autocare_api/internal/domain/entities"
)

func ComputeHistoryHash(prevHash, jobID string, change entities.StatusChange) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%d",
		prevHash, jobID, change.Command, change.From, change.To,
		change.At.UTC().Format(time.RFC3339Nano), change.Seq)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", sum)
}

// VerifyHistory walks the hash chain and returns the sequence number of the first
// entry that does not match, or 0 when the chain is intact.
func VerifyHistory(job entities.Job) int {
	prev := ""
	for i, change := range job.History {
		if change.Seq != i+1 || change.PrevHash != prev {
			return change.Seq
		}
		if ComputeHistoryHash(prev, job.ID, change) != change.Hash {
			return change.Seq
		}
		prev = change.Hash
	}
	return 0
}

func appendHistory(job *entities.Job, kind CommandKind, from entities.JobStatus, actor entities.Actor, note string, now time.Time) {
	prev := ""
	if n := len(job.History); n > 0 {
		prev = job.History[n-1].Hash
	}
	change := entities.StatusChange{
		Seq:       len(job.History) + 1,
		Command:   string(kind),
		From:      from,
		To:        job.Status,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Note:      note,
		At:        now.UTC(),
		PrevHash:  prev,
	}
	change.Hash = ComputeHistoryHash(prev, job.ID, change)
	job.History = append(job.History, change)
}
