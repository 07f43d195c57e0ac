package types

// HealthStatus is returned by GET /api/health.
type HealthStatus struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// example: 2024-06-01T12:00:00Z
	Timestamp string `json:"timestamp" example:"2024-06-01T12:00:00Z"`
}

// ModelsResponse wraps the list of models returned by GET /api/models.
type ModelsResponse struct {
	// List of available models.
	Models []Model `json:"models"`
}

// TrainingConfig is the payload of POST /api/train/start.
// Numeric hyperparameters are always sent as JSON numbers.
type TrainingConfig struct {
	// example: unsloth/llama-3-8b-bnb-4bit
	ModelName string `json:"model_name" example:"unsloth/llama-3-8b-bnb-4bit"`
	// example: alpaca
	Dataset string `json:"dataset" example:"alpaca"`
	// example: 2048
	MaxSeqLength int `json:"max_seq_length" example:"2048"`
	// example: 0.0002
	LearningRate float64 `json:"learning_rate" example:"0.0002"`
	// example: 3
	NumEpochs int `json:"num_epochs" example:"3"`
	// example: 4
	BatchSize int `json:"batch_size" example:"4"`
	// LoRA rank.
	// example: 16
	LoraR int `json:"lora_r" example:"16"`
	// example: 16
	LoraAlpha int `json:"lora_alpha" example:"16"`
}

// TrainingStatus is returned by the training endpoints.
type TrainingStatus struct {
	// example: started
	Status string `json:"status" example:"started"`
	// example: Training simulation started (this is a demo)
	Message string `json:"message" example:"Training simulation started (this is a demo)"`
	// example: job_20240601_120000
	JobID string `json:"job_id,omitempty" example:"job_20240601_120000"`
}

// Training status values the front-end distinguishes.
const (
	TrainingIdle    = "idle"
	TrainingStarted = "started"
	TrainingError   = "error"
)

// IsError reports whether the status describes a failed submission.
func (s TrainingStatus) IsError() bool { return s.Status == TrainingError }

// EchoRequest is the payload of POST /api/echo.
type EchoRequest struct {
	// example: hello
	Text string `json:"text" example:"hello"`
}

// EchoResponse is returned by POST /api/echo.
type EchoResponse struct {
	// The request body as the backend decoded it.
	Received map[string]any `json:"received"`
	// example: Hello! You sent: hello
	Message string `json:"message" example:"Hello! You sent: hello"`
	// example: 2024-06-01T12:00:00Z
	Timestamp string `json:"timestamp" example:"2024-06-01T12:00:00Z"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
