package dto

import (
	"crm-service/internal/models"
)

// CustomerSyncSummary reports a customer reconciliation run.
// Created + Updated + Failed always equals Total.
type CustomerSyncSummary struct {
	Created  int               `json:"created"`
	Updated  int               `json:"updated"`
	Failed   int               `json:"failed"`
	Total    int               `json:"total"`
	Failures map[string]string `json:"failures,omitempty"`
}

// OrderSyncSummary reports an order reconciliation run. Skipped counts order
// owners with no local customer; Ignored counts documents lacking an owner or
// a usable timestamp.
type OrderSyncSummary struct {
	Updated  int               `json:"updated"`
	Scanned  int               `json:"scanned"`
	Skipped  int               `json:"skipped"`
	Ignored  int               `json:"ignored"`
	Failed   int               `json:"failed"`
	Failures map[string]string `json:"failures,omitempty"`
}

type StaffSyncSummary struct {
	Updated  int               `json:"updated"`
	Scanned  int               `json:"scanned"`
	Failed   int               `json:"failed"`
	Failures map[string]string `json:"failures,omitempty"`
}

type SyncStatusResponse struct {
	Configured   bool   `json:"configured"`
	CircuitState string `json:"circuitState"`
}

type ListSyncRunsRequest struct {
	Kind  string `query:"kind" validate:"omitempty,oneof=customers orders staff"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

type SyncRunResponse struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	Status     string            `json:"status"`
	Created    int               `json:"created"`
	Updated    int               `json:"updated"`
	Skipped    int               `json:"skipped"`
	Failed     int               `json:"failed"`
	Total      int               `json:"total"`
	Error      string            `json:"error,omitempty"`
	Failures   map[string]string `json:"failures,omitempty"`
	StartedAt  int64             `json:"startedAt"`
	FinishedAt int64             `json:"finishedAt"`
	DurationMs int64             `json:"durationMs"`
}

func NewSyncRunResponse(r *models.SyncRun) SyncRunResponse {
	resp := SyncRunResponse{
		ID:         r.ID.String(),
		Kind:       r.Kind,
		Status:     r.Status,
		Created:    r.Created,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		Failed:     r.Failed,
		Total:      r.Total,
		Error:      r.Error,
		StartedAt:  r.StartedAt.UnixMilli(),
		FinishedAt: r.FinishedAt.UnixMilli(),
		DurationMs: r.Duration().Milliseconds(),
	}
	if len(r.Failures) > 0 {
		resp.Failures = make(map[string]string, len(r.Failures))
		for k, v := range r.Failures {
			if s, ok := v.(string); ok {
				resp.Failures[k] = s
			}
		}
	}
	return resp
}

func NewSyncRunResponses(runs []models.SyncRun) []SyncRunResponse {
	out := make([]SyncRunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, NewSyncRunResponse(&runs[i]))
	}
	return out
}
