// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	apperrors "auditoria/cli/internal/errors"
)

// ListFiles calls GET /api/files/user and returns the caller's files.
func (h *HTTP) ListFiles(ctx context.Context, accessToken string) ([]File, error) {
	var files []File
	if err := h.doJSON(ctx, http.MethodGet, epUserFiles, accessToken, nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteFile calls DELETE /api/files/{id}. Both 200 and 204 mean deleted.
func (h *HTTP) DeleteFile(ctx context.Context, accessToken string, id int) error {
	return h.doJSON(ctx, http.MethodDelete, fmt.Sprintf(epFile, id), accessToken, nil, nil)
}

// Upload streams a local file as multipart form field "file" into the
// processing pipeline. The pipeline flavor (data or contract) selects the
// backend route. Uses the long-timeout client: large documents can take a while.
func (h *HTTP) Upload(ctx context.Context, accessToken string, kind UploadKind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := h.newRequest(ctx, http.MethodPost, fmt.Sprintf(epPipeline, kind), accessToken, pr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.uploadClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.Transport, "upload failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	return nil
}

// Preview calls GET /api/files/see-file/{filename} and returns the raw bytes
// together with the reported content type. The body may be CSV, PDF or text;
// interpretation is the caller's concern.
func (h *HTTP) Preview(ctx context.Context, accessToken string, filename string) ([]byte, string, error) {
	req, err := h.newRequest(ctx, http.MethodGet,
		fmt.Sprintf(epSeeFile, url.PathEscape(filename)), accessToken, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.Transport, "preview failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.Transport, "read preview", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
