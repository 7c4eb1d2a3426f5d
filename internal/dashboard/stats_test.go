// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dashboard

import (
	"testing"

	"auditoria/cli/internal/backend"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		files  []backend.File
		audits []backend.AuditRecord
		want   Stats
	}{
		{
			name: "active count ignores inactive files",
			files: []backend.File{
				{ID: 1, Filename: "a.csv", Type: "csv", IsActive: true, User: backend.User{FullName: "X"}},
				{ID: 2, Filename: "b.csv", Type: "csv", IsActive: false, User: backend.User{FullName: "X"}},
			},
			want: Stats{TotalFiles: 2, ActiveFiles: 1, AwaitingReview: 1},
		},
		{
			name: "decided audits leave review queue",
			files: []backend.File{
				{ID: 1, IsActive: true},
				{ID: 2, IsActive: true},
				{ID: 3, IsActive: true},
			},
			audits: []backend.AuditRecord{
				{ID: 10, Status: backend.StatusApproved, File: backend.File{ID: 1}},
				{ID: 11, Status: backend.StatusRejected, File: backend.File{ID: 2}},
				{ID: 12, Status: backend.StatusPending, File: backend.File{ID: 3}},
			},
			want: Stats{
				TotalFiles:      3,
				ActiveFiles:     3,
				PendingAudits:   1,
				ApprovedAudits:  1,
				RejectedAudits:  1,
				CompletedAudits: 2,
				AwaitingReview:  1,
			},
		},
		{
			name: "empty account",
			want: Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.files, tt.audits)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
