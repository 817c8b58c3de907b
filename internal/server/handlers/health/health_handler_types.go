package health

const StatusOK = "ok"

// HealthResponse is the body of both liveness endpoints.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"API is healthy"`
} //	@name	HealthResponse
