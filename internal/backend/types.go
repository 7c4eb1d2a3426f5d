// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// User identifies the owner of a file as reported by the backend.
type User struct {
	ID        int      `json:"id"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	GoogleID  *string  `json:"googleId"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"createdAt"`
	IsActive  bool     `json:"isActive"`
}

// File is an uploaded document record.
type File struct {
	ID         int    `json:"id"`
	Filename   string `json:"filename"`
	URL        string `json:"url"`
	Path       string `json:"path"`
	Type       string `json:"type"`
	UploadedAt string `json:"uploaded_at"`
	IsActive   bool   `json:"is_active"`
	User       User   `json:"user"`
}

// AuditStatus is the review state attached to an audit record.
type AuditStatus string

const (
	StatusPending  AuditStatus = "pending"
	StatusApproved AuditStatus = "approved"
	StatusRejected AuditStatus = "rejected"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s AuditStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DisplayName returns the label shown in terminal output.
func (s AuditStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Reviewed"
	}
	return string(s)
}

// AuditRecord is a user-submitted note plus status attached to a file.
// The nested file object is the authoritative shape; earlier flat records
// are superseded.
type AuditRecord struct {
	ID        int         `json:"id"`
	Notes     string      `json:"notes"`
	Status    AuditStatus `json:"status"`
	AuditedAt string      `json:"audited_at"`
	File      File        `json:"file"`
}

// AuditRequest is the body of an audit submission.
type AuditRequest struct {
	FileID int         `json:"fileId"`
	Notes  string      `json:"notes"`
	Status AuditStatus `json:"status"`
}

// Analysis is the AI analysis detail for a processed file.
type Analysis struct {
	ID             int    `json:"id"`
	TextExtraction int    `json:"text_extraction"`
	AIResponse     string `json:"ai_response"`
	AnalyzedAt     string `json:"analyzed_at"`
}

// ForecastRequest asks the backend for a sales forecast over a file.
type ForecastRequest struct {
	FileID int    `json:"fileId"`
	Level  string `json:"level,omitempty"`
	NDays  int    `json:"n_days"`
}

// Forecast is the full forecast response.
type Forecast struct {
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	Summary     ForecastSummary `json:"summary"`
	Predictions []Prediction    `json:"predictions"`
}

// ForecastSummary aggregates the prediction window.
type ForecastSummary struct {
	Period              string           `json:"period"`
	Trend               string           `json:"trend"`
	AvgDailySales       float64          `json:"avg_daily_sales"`
	TotalPredictedSales float64          `json:"total_predicted_sales"`
	BestDay             DayPrediction    `json:"best_day"`
	WorstDay            DayPrediction    `json:"worst_day"`
	KeyMetrics          []ForecastMetric `json:"key_metrics"`
}

// DayPrediction is a single highlighted day within the summary.
type DayPrediction struct {
	Date           string  `json:"date"`
	PredictedSales float64 `json:"predicted_sales"`
	DayOfWeek      string  `json:"day_of_week"`
}

// ForecastMetric is a named metric in the forecast summary.
type ForecastMetric struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// Prediction is one forecasted day.
type Prediction struct {
	Date           string  `json:"date"`
	DayOfWeek      string  `json:"day_of_week"`
	PredictedSales float64 `json:"predicted_sales"`
}

// UploadKind selects the processing pipeline an upload feeds.
type UploadKind string

const (
	// UploadData routes the file into the sales-data pipeline.
	UploadData UploadKind = "data"
	// UploadContract routes the file into the contract pipeline.
	UploadContract UploadKind = "contract"
)
