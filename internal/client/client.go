// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package client centralizes all backend-facing workflows of the CLI.
// It binds the backend API, the session store and the event bus together and
// enforces the authenticated-request contract: operations that require a
// credential read it from the session first and fail locally, without any
// network I/O, when none is present.
package client

import (
	"context"
	"strings"

	"auditoria/cli/internal/backend"
	apperrors "auditoria/cli/internal/errors"
	"auditoria/cli/internal/events"
	"auditoria/cli/internal/session"
)

// Client is the workflow layer the commands talk to.
type Client struct {
	be    backend.API
	store *session.Store
	bus   *events.Bus
	// logoutOn401 clears the local session when the backend rejects the
	// credential. Off by default: the user gets an invalid-credentials
	// message and keeps the session until an explicit logout.
	logoutOn401 bool
}

// New wires a Client. bus may be nil when no component listens for events.
func New(be backend.API, store *session.Store, bus *events.Bus, logoutOn401 bool) *Client {
	if bus == nil {
		bus = events.NewBus()
	}
	return &Client{be: be, store: store, bus: bus, logoutOn401: logoutOn401}
}

// Session exposes the underlying session store.
func (c *Client) Session() *session.Store { return c.store }

// Events exposes the invalidation bus.
func (c *Client) Events() *events.Bus { return c.bus }

// requireToken returns the current token or an Unauthenticated error.
// No network call may be issued when this fails.
func (c *Client) requireToken() (string, error) {
	tok, ok := c.store.Token()
	if !ok {
		return "", apperrors.New(apperrors.Unauthenticated, "not logged in; run 'auditoria login'")
	}
	return tok, nil
}

// checkCredential applies the configured 401 policy to err and returns it.
func (c *Client) checkCredential(err error) error {
	if err != nil && c.logoutOn401 && apperrors.Is(err, apperrors.InvalidCredentials) {
		c.store.Logout()
		c.bus.Publish(events.Event{Type: events.LoggedOut})
	}
	return err
}

// Login authenticates with email/password and installs the session token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	token, err := c.be.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.store.Login(token)
	c.bus.Publish(events.Event{Type: events.LoggedIn})
	return nil
}

// LoginWithGoogle authenticates with a Google ID token.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) error {
	token, err := c.be.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return err
	}
	c.store.Login(token)
	c.bus.Publish(events.Event{Type: events.LoggedIn})
	return nil
}

// Register creates a new account. Registration does not log the user in.
func (c *Client) Register(ctx context.Context, fullName, email, password string) error {
	return c.be.Register(ctx, fullName, email, password)
}

// Logout clears the local session. There is no remote session to invalidate;
// calling it while logged out is a no-op.
func (c *Client) Logout() {
	c.store.Logout()
	c.bus.Publish(events.Event{Type: events.LoggedOut})
}

// ListFiles returns the user's uploaded files.
func (c *Client) ListFiles(ctx context.Context) ([]backend.File, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}
	files, err := c.be.ListFiles(ctx, token)
	return files, c.checkCredential(err)
}

// DeleteFile removes a file and broadcasts the deletion.
func (c *Client) DeleteFile(ctx context.Context, id int) error {
	token, err := c.requireToken()
	if err != nil {
		return err
	}
	if err := c.checkCredential(c.be.DeleteFile(ctx, token, id)); err != nil {
		return err
	}
	c.bus.Publish(events.Event{Type: events.FileDeleted, FileID: id})
	return nil
}

// Upload feeds a local file into the processing pipeline and broadcasts the
// upload so list views refresh without a manual reload.
func (c *Client) Upload(ctx context.Context, kind backend.UploadKind, path string) error {
	token, err := c.requireToken()
	if err != nil {
		return err
	}
	if err := c.checkCredential(c.be.Upload(ctx, token, kind, path)); err != nil {
		return err
	}
	c.bus.Publish(events.Event{Type: events.FileUploaded, Filename: path})
	return nil
}

// Preview fetches raw file bytes plus the reported content type.
func (c *Client) Preview(ctx context.Context, filename string) ([]byte, string, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, "", err
	}
	data, contentType, err := c.be.Preview(ctx, token, filename)
	return data, contentType, c.checkCredential(err)
}

// ListAudits returns the user's audit records.
func (c *Client) ListAudits(ctx context.Context) ([]backend.AuditRecord, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}
	records, err := c.be.ListAudits(ctx, token)
	return records, c.checkCredential(err)
}

// SubmitAudit validates and stores an audit note, then broadcasts it.
func (c *Client) SubmitAudit(ctx context.Context, req backend.AuditRequest) error {
	if strings.TrimSpace(req.Notes) == "" {
		return apperrors.New(apperrors.InvalidArgument, "notes must not be empty")
	}
	if !req.Status.Valid() {
		return apperrors.New(apperrors.InvalidArgument, "status must be pending, approved or rejected")
	}
	token, err := c.requireToken()
	if err != nil {
		return err
	}
	if err := c.checkCredential(c.be.SubmitAudit(ctx, token, req)); err != nil {
		return err
	}
	c.bus.Publish(events.Event{Type: events.AuditSubmitted, FileID: req.FileID})
	return nil
}

// GetAnalysis returns the AI analysis detail for a file.
func (c *Client) GetAnalysis(ctx context.Context, id int) (*backend.Analysis, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}
	a, err := c.be.GetAnalysis(ctx, token, id)
	return a, c.checkCredential(err)
}

// GetForecast requests a sales forecast over a processed file.
func (c *Client) GetForecast(ctx context.Context, req backend.ForecastRequest) (*backend.Forecast, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}
	f, err := c.be.GetForecast(ctx, token, req)
	return f, c.checkCredential(err)
}
