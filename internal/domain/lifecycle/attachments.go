package lifecycle

import (
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
)

type AttachmentKind string

const (
	AttachmentPhoto     AttachmentKind = "photo"
	AttachmentVoiceNote AttachmentKind = "voice_note"
)

func (k AttachmentKind) Valid() bool {
	return k == AttachmentPhoto || k == AttachmentVoiceNote
}

// Attach records an uploaded file on the job. Photos accumulate, a voice note replaces
// the previous one. The job's customer, its assigned technician or an admin may attach,
// and never once the job is terminal. Attachments do not change the status, so no
// history entry is written.
func Attach(job entities.Job, kind AttachmentKind, url string, actor entities.Actor, now time.Time) (entities.Job, error) {
	if err := CanAttach(job, kind, actor); err != nil {
		return entities.Job{}, err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return entities.Job{}, invalid("url", "is required")
	}

	next := job.Clone()
	switch kind {
	case AttachmentPhoto:
		next.Photos = append(next.Photos, url)
	case AttachmentVoiceNote:
		next.VoiceNote = url
	}
	next.UpdatedAt = now.UTC()
	return next, nil
}

// CanAttach runs the checks of Attach so callers can refuse before uploading anything.
func CanAttach(job entities.Job, kind AttachmentKind, actor entities.Actor) error {
	if !kind.Valid() {
		return invalid("kind", "must be photo or voice_note")
	}
	if job.Status.IsTerminal() {
		return &TransitionError{Command: "attach", From: string(job.Status)}
	}
	if actor.ID == "" {
		return forbidden("attach", "missing actor")
	}
	if actor.IsAdmin() || job.CustomerID == actor.ID {
		return nil
	}
	if actor.Role == entities.RoleTechnician && job.TechnicianID == actor.ID {
		return nil
	}
	return forbidden("attach", "not the job's customer or technician")
}
