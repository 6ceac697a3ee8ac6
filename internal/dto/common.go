package dto

// DeleteResponse is returned by every delete endpoint
type DeleteResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp int64             `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}
