// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the AuditorIA backend service.
// It defines the API contract for authentication, file management, audit records,
// AI analysis and sales forecasting. The package includes both interface definitions
// and an HTTP-based implementation with typed request/response schemas.
package backend

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
// Methods taking an accessToken attach it as a bearer credential; passing an
// empty token is a caller bug — the session layer guards against it before
// any network I/O happens.
type API interface {
	// Login exchanges email/password credentials for a bearer token.
	Login(ctx context.Context, email, password string) (token string, err error)
	// LoginWithGoogle exchanges a Google ID token for a bearer token.
	LoginWithGoogle(ctx context.Context, idToken string) (token string, err error)
	// Register creates a new account. The response body is informational only.
	Register(ctx context.Context, fullName, email, password string) error

	// ListFiles returns the caller's uploaded files.
	ListFiles(ctx context.Context, accessToken string) ([]File, error)
	// DeleteFile removes a file by id.
	DeleteFile(ctx context.Context, accessToken string, id int) error
	// Upload sends a local file into the processing pipeline.
	Upload(ctx context.Context, accessToken string, kind UploadKind, path string) error
	// Preview fetches the raw bytes of a stored file (csv/pdf/text).
	Preview(ctx context.Context, accessToken string, filename string) ([]byte, string, error)

	// ListAudits returns the caller's audit records.
	ListAudits(ctx context.Context, accessToken string) ([]AuditRecord, error)
	// SubmitAudit stores an audit note and status for a file.
	SubmitAudit(ctx context.Context, accessToken string, req AuditRequest) error

	// GetAnalysis returns the AI analysis detail for a file.
	GetAnalysis(ctx context.Context, accessToken string, id int) (*Analysis, error)
	// GetForecast requests a sales forecast over a processed file.
	GetForecast(ctx context.Context, accessToken string, req ForecastRequest) (*Forecast, error)
}
