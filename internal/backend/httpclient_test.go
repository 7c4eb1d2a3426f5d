// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "auditoria/cli/internal/errors"
)

func TestAuthenticatedRequestsCarryExactBearerHeader(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	_, err := h.ListFiles(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestRequestsCarryStandardHeaders(t *testing.T) {
	var gotUA, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	_, err := h.ListFiles(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "auditoria-cli/1.0", gotUA)
	assert.NotEmpty(t, gotReqID)
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a credential")

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body.Email)
		assert.Equal(t, "x", body.Password)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"tkn1"}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	token, err := h.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tkn1", token)
}

func TestLoginRejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	_, err := h.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.InvalidCredentials, apperrors.KindOf(err))

	var e *apperrors.E
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "Invalid credentials", e.Message)
}

func TestGoogleLoginReadsAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/google/mobile", r.URL.Path)
		var body struct {
			IDToken string `json:"idToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gid", body.IDToken)
		_, _ = w.Write([]byte(`{"access_token":"gtok"}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	token, err := h.LoginWithGoogle(context.Background(), "gid")
	require.NoError(t, err)
	assert.Equal(t, "gtok", token)
}

func TestListFilesDecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/user", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"filename":"a.csv","type":"csv","is_active":true,"user":{"fullName":"X"}},
			{"id":2,"filename":"b.pdf","type":"pdf","is_active":false,"user":{"fullName":"Y"}}
		]`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	files, err := h.ListFiles(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", files[0].Filename)
	assert.True(t, files[0].IsActive)
	assert.Equal(t, "X", files[0].User.FullName)
	assert.False(t, files[1].IsActive)
}

func TestServerMessageShapes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     string
		wantKind apperrors.Kind
	}{
		{
			name:     "message string",
			status:   500,
			body:     `{"message":"pipeline exploded"}`,
			want:     "pipeline exploded",
			wantKind: apperrors.Server,
		},
		{
			name:     "message list",
			status:   400,
			body:     `{"message":["email must be valid","password too short"]}`,
			want:     "email must be valid; password too short",
			wantKind: apperrors.Server,
		},
		{
			name:     "error field",
			status:   403,
			body:     `{"error":"forbidden"}`,
			want:     "forbidden",
			wantKind: apperrors.Server,
		},
		{
			name:     "unparseable body falls back to status text",
			status:   502,
			body:     `<html>bad gateway</html>`,
			want:     "request failed with status 502",
			wantKind: apperrors.Server,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			h := newHTTP(srv.URL)
			_, err := h.ListFiles(context.Background(), "tok")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))

			var e *apperrors.E
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.want, e.Message)
		})
	}
}

func TestDecodeErrorKind(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	_, err := h.ListFiles(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, apperrors.Decode, apperrors.KindOf(err))
}

func TestTransportErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	h := newHTTP(srv.URL)
	_, err := h.ListFiles(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, apperrors.Transport, apperrors.KindOf(err))
}

func TestUploadSendsMultipartFileField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount\n2026-01-01,10\n"), 0o600))

	var gotPath, gotField, gotName string
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotName = headers[0].Filename
			f, err := headers[0].Open()
			require.NoError(t, err)
			gotContent, _ = io.ReadAll(f)
			f.Close()
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	require.NoError(t, h.Upload(context.Background(), "tok", UploadData, path))

	assert.Equal(t, "/api/processing-pipeline-module/data", gotPath)
	assert.Equal(t, "file", gotField)
	assert.Equal(t, "ventas.csv", gotName)
	assert.Equal(t, "date,amount\n2026-01-01,10\n", string(gotContent))
}

func TestUploadContractRoute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	require.NoError(t, h.Upload(context.Background(), "tok", UploadContract, path))
	assert.Equal(t, "/api/processing-pipeline-module/contract", gotPath)
}

func TestDeleteFileAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/files/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	require.NoError(t, h.DeleteFile(context.Background(), "tok", 7))
}

func TestSubmitAuditBody(t *testing.T) {
	var got AuditRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audit-record", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	req := AuditRequest{FileID: 3, Notes: "looks fine", Status: StatusApproved}
	require.NoError(t, h.SubmitAudit(context.Background(), "tok", req))
	assert.Equal(t, req, got)
}

func TestListAuditsDecodesNestedFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audit-record/user", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":5,"notes":"check totals","status":"pending","audited_at":"2026-08-20T10:00:00Z",
			 "file":{"id":1,"filename":"a.csv","type":"csv","is_active":true,"user":{"fullName":"X"}}}
		]`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	records, err := h.ListAudits(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, StatusPending, records[0].Status)
	assert.Equal(t, "a.csv", records[0].File.Filename)
}

func TestGetAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/9", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":9,"text_extraction":1834,"ai_response":"Revenue is trending up.","analyzed_at":"2026-08-21T09:30:00Z"}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	a, err := h.GetAnalysis(context.Background(), "tok", 9)
	require.NoError(t, err)
	assert.Equal(t, 1834, a.TextExtraction)
	assert.Equal(t, "Revenue is trending up.", a.AIResponse)
}

func TestGetForecastAppliesDefaults(t *testing.T) {
	var got ForecastRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/forecast/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"status":"ok","message":"done",
			"summary":{"period":"7 days","trend":"up","avg_daily_sales":10.5,"total_predicted_sales":73.5,
				"best_day":{"date":"2026-09-05","predicted_sales":15,"day_of_week":"Saturday"},
				"worst_day":{"date":"2026-09-02","predicted_sales":6,"day_of_week":"Wednesday"},
				"key_metrics":[{"name":"growth","value":3.2,"unit":"%","description":"week over week"}]},
			"predictions":[{"date":"2026-09-02","day_of_week":"Wednesday","predicted_sales":6}]
		}`))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	f, err := h.GetForecast(context.Background(), "tok", ForecastRequest{FileID: 4})
	require.NoError(t, err)

	assert.Equal(t, 4, got.FileID)
	assert.Equal(t, "weekly", got.Level)
	assert.Equal(t, 7, got.NDays)

	assert.Equal(t, "up", f.Summary.Trend)
	require.Len(t, f.Predictions, 1)
	assert.Equal(t, 6.0, f.Predictions[0].PredictedSales)
}

func TestPreviewReturnsRawBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/see-file/ventas%202026.csv", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	}))
	defer srv.Close()

	h := newHTTP(srv.URL)
	data, contentType, err := h.Preview(context.Background(), "tok", "ventas 2026.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
	assert.Equal(t, "text/csv", contentType)
}
