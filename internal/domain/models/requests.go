package models

// Requests for the HTTP endpoints. Defined in domain for consistency and reuse.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SimulationCreateRequest struct {
	Asset          string  `json:"asset" validate:"required"`
	Strategy       string  `json:"strategy" validate:"required"`
	TimeframeDays  int     `json:"timeframe_days" validate:"required,gte=1,lte=365"`
	InitialCapital float64 `json:"initial_capital" default:"10000" validate:"gt=0"`
}

type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

type AnomalyDetectRequest struct {
	Data       []float64 `json:"data" validate:"required,min=1"`
	WindowSize int       `json:"window_size" default:"20" validate:"gte=1,lte=10000"`
}

type FeedbackRequest struct {
	Asset         string             `json:"asset" validate:"required"`
	Strategy      string             `json:"strategy" validate:"required"`
	TimeframeDays int                `json:"timeframe_days" validate:"required,gte=1,lte=365"`
	Performance   PerformanceSummary `json:"performance"`
}
