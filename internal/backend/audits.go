// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// ListAudits calls GET /api/audit-record/user and returns the caller's
// audit records, newest shape (nested file object).
func (h *HTTP) ListAudits(ctx context.Context, accessToken string) ([]AuditRecord, error) {
	var records []AuditRecord
	if err := h.doJSON(ctx, http.MethodGet, epUserAudits, accessToken, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SubmitAudit posts an audit note to /api/audit-record.
// The backend may answer 200, 201 or 204; all mean stored.
func (h *HTTP) SubmitAudit(ctx context.Context, accessToken string, req AuditRequest) error {
	return h.doJSON(ctx, http.MethodPost, epAudit, accessToken, req, nil)
}
