// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dashboard derives the overview counters shown by the dashboard
// command from the file and audit listings. Counters are computed
// client-side; the backend has no aggregate endpoint.
package dashboard

import "auditoria/cli/internal/backend"

// Stats are the derived overview counters.
type Stats struct {
	TotalFiles  int
	ActiveFiles int

	PendingAudits  int
	ApprovedAudits int
	RejectedAudits int

	// CompletedAudits counts audits that reached a decision.
	CompletedAudits int
	// AwaitingReview counts active files with no decided audit yet.
	AwaitingReview int
}

// Compute derives Stats from list responses.
func Compute(files []backend.File, audits []backend.AuditRecord) Stats {
	var s Stats

	decided := make(map[int]bool)
	for _, a := range audits {
		switch a.Status {
		case backend.StatusPending:
			s.PendingAudits++
		case backend.StatusApproved:
			s.ApprovedAudits++
			decided[a.File.ID] = true
		case backend.StatusRejected:
			s.RejectedAudits++
			decided[a.File.ID] = true
		}
	}
	s.CompletedAudits = s.ApprovedAudits + s.RejectedAudits

	s.TotalFiles = len(files)
	for _, f := range files {
		if !f.IsActive {
			continue
		}
		s.ActiveFiles++
		if !decided[f.ID] {
			s.AwaitingReview++
		}
	}
	return s
}
