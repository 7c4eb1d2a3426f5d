// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/http"
)

// GetAnalysis calls GET /api/ai/{id} and returns the AI analysis detail
// produced by the processing pipeline for the given file.
func (h *HTTP) GetAnalysis(ctx context.Context, accessToken string, id int) (*Analysis, error) {
	var out Analysis
	if err := h.doJSON(ctx, http.MethodGet, fmt.Sprintf(epAnalysis, id), accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetForecast posts to /api/ai/forecast/ and returns the sales forecast.
// Level defaults to weekly and the horizon to seven days when unset.
func (h *HTTP) GetForecast(ctx context.Context, accessToken string, req ForecastRequest) (*Forecast, error) {
	if req.Level == "" {
		req.Level = "weekly"
	}
	if req.NDays <= 0 {
		req.NDays = 7
	}

	var out Forecast
	if err := h.doJSON(ctx, http.MethodPost, epForecast, accessToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
