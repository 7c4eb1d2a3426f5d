package backend

import (
	"context"
	"net/http"

	apperrors "auditoria/cli/internal/errors"
)

// Login posts email/password credentials to /api/auth/login.
// The backend answers {token} on success (200 or 201).
func (h *HTTP) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token string `json:"token"`
	}
	if err := h.doJSON(ctx, http.MethodPost, epLogin, "", body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", apperrors.New(apperrors.Decode, "login response carried no token")
	}
	return out.Token, nil
}

// LoginWithGoogle exchanges a Google ID token via /api/auth/google/mobile.
// This endpoint names its credential access_token, unlike the password flow.
func (h *HTTP) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	body := struct {
		IDToken string `json:"idToken"`
	}{IDToken: idToken}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := h.doJSON(ctx, http.MethodPost, epGoogleLogin, "", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", apperrors.New(apperrors.Decode, "google login response carried no token")
	}
	return out.AccessToken, nil
}

// Register creates an account via /api/auth/register. A 201 means success;
// the response body is informational and discarded.
func (h *HTTP) Register(ctx context.Context, fullName, email, password string) error {
	body := struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{FullName: fullName, Email: email, Password: password}

	return h.doJSON(ctx, http.MethodPost, epRegister, "", body, nil)
}
