package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "auditoria/cli/internal/errors"
	"auditoria/cli/internal/logging"
)

// REST endpoint paths of the AuditorIA backend.
const (
	epLogin       = "/api/auth/login"
	epGoogleLogin = "/api/auth/google/mobile"
	epRegister    = "/api/auth/register"
	epUserFiles   = "/api/files/user"
	epFile        = "/api/files/%d"
	epSeeFile     = "/api/files/see-file/%s"
	epPipeline    = "/api/processing-pipeline-module/%s"
	epUserAudits  = "/api/audit-record/user"
	epAudit       = "/api/audit-record"
	epAnalysis    = "/api/ai/%d"
	epForecast    = "/api/ai/forecast/"
)

// HTTP implements the API over REST endpoints.
// A short-timeout client serves interactive calls; uploads get their own
// client with a two-minute window to accommodate large documents.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://localhost:3000")
	baseURL string
	// client is the HTTP client for regular requests
	client *http.Client
	// uploadClient is the HTTP client used for multipart uploads
	uploadClient *http.Client
}

// newHTTP creates a new HTTP client with the given base URL.
func newHTTP(baseURL string) *HTTP {
	return &HTTP{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: 10 * time.Second},
		uploadClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// setStandardHeaders applies headers common to every request.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "auditoria-cli/1.0")
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("X-Request-Id", uuid.NewString())
}

// newRequest builds a request with standard headers and, when accessToken is
// non-empty, the bearer credential.
func (h *HTTP) newRequest(ctx context.Context, method, path, accessToken string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidURL, "malformed endpoint", err)
	}
	h.setStandardHeaders(req)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return req, nil
}

// doJSON sends a request whose body (when non-nil) is marshaled as JSON and
// decodes a successful response into out (when non-nil). Non-2xx statuses
// become Server/InvalidCredentials errors carrying any parseable message.
func (h *HTTP) doJSON(ctx context.Context, method, path, accessToken string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := h.newRequest(ctx, method, path, accessToken, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.Transport, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(apperrors.Transport, "read response", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Raw bodies go to the diagnostic log only, never to the user.
		logging.Diag().Debug().
			Str("path", path).
			Str("body", logging.Mask(string(raw))).
			Msg("undecodable response")
		return apperrors.Wrap(apperrors.Decode, "invalid response from server", err)
	}
	return nil
}

// statusError converts a non-2xx response into a typed error, surfacing the
// server-provided message verbatim when one is present.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := serverMessage(raw)
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	logging.Diag().Debug().
		Int("status", resp.StatusCode).
		Str("body", logging.Mask(string(raw))).
		Msg("server error")
	return apperrors.Status(resp.StatusCode, msg)
}

// serverMessage extracts a human-readable message from an error body.
// Bodies may carry {message: string | []string} or {error: string}.
func serverMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	if len(body.Message) > 0 {
		var s string
		if err := json.Unmarshal(body.Message, &s); err == nil {
			return s
		}
		var list []string
		if err := json.Unmarshal(body.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
	}
	return body.Error
}
