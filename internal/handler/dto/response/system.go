package response

import "time"

type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Service   string    `json:"service" example:"braceria-backend"`
	Timestamp time.Time `json:"timestamp"`
}

type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
