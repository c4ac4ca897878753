package types

// StatusOK is reported by a healthy service
const StatusOK = "ok"

// ErrorResponse is returned by the ambient endpoints (404, 413, 429)
type ErrorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Provider  map[string]string `json:"provider"`
}

// VersionResponse for version endpoint
type VersionResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}
