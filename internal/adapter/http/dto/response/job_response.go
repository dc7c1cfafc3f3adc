package response

import (
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
)

type JobResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	VehicleID      string          `json:"vehicle_id"`
	Description    string          `json:"description"`
	Address        string          `json:"address,omitempty"`
	Status         string          `json:"status"`
	NextStatuses   []string        `json:"next_statuses"`
	TechnicianID   string          `json:"technician_id,omitempty"`
	TechnicianName string          `json:"technician_name,omitempty"`
	GarageName     string          `json:"garage_name,omitempty"`
	Photos         []string        `json:"photos"`
	VoiceNote      string          `json:"voice_note,omitempty"`
	Quote          *entities.Quote `json:"quote,omitempty"`
	Bill           *entities.Bill  `json:"bill,omitempty"`
	PartsSource    string          `json:"parts_source,omitempty"`
	PartsOrderID   string          `json:"parts_order_id,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	next := lifecycle.NextStatuses(j.Status)
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, string(s))
	}
	photos := j.Photos
	if photos == nil {
		photos = []string{}
	}
	return JobResponse{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		CustomerPhone:  j.CustomerPhone,
		VehicleID:      j.VehicleID,
		Description:    j.Description,
		Address:        j.Address,
		Status:         string(j.Status),
		NextStatuses:   nextStatuses,
		TechnicianID:   j.TechnicianID,
		TechnicianName: j.TechnicianName,
		GarageName:     j.GarageName,
		Photos:         photos,
		VoiceNote:      j.VoiceNote,
		Quote:          j.Quote,
		Bill:           j.Bill,
		PartsSource:    string(j.PartsSource),
		PartsOrderID:   j.PartsOrderID,
		CancelReason:   j.CancelReason,
		Version:        j.Version,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		CompletedAt:    j.CompletedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

type HistoryResponse struct {
	JobID   string                  `json:"job_id"`
	Intact  bool                    `json:"intact"`
	Entries []entities.StatusChange `json:"entries"`
}

func FromHistory(jobID string, entries []entities.StatusChange, intact bool) HistoryResponse {
	if entries == nil {
		entries = []entities.StatusChange{}
	}
	return HistoryResponse{JobID: jobID, Intact: intact, Entries: entries}
}

type PartRequestResponse struct {
	Job   JobResponse   `json:"job"`
	Order OrderResponse `json:"order"`
}
