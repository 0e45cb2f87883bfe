package dto

type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}
