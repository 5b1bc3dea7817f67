package api

import (
	"context"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
)

// Login exchanges credentials for a bearer token and user profile.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Password, "password"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/auth/login", req)
	if err != nil {
		return nil, err
	}
	var lr types.LoginResponse
	if err := do(httpClient, httpReq, "login", http.StatusOK, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// ForgotPassword starts a password reset for the given account.
func ForgotPassword(ctx context.Context, httpClient *http.Client, baseURL, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateEmail(email); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/auth/forgot-password", types.ForgotPasswordRequest{Email: email})
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "forgot password", http.StatusOK, nil)
}

// ResetPassword completes a password reset using the emailed token.
func ResetPassword(ctx context.Context, httpClient *http.Client, baseURL, token, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateRequired(token, "token"); err != nil {
		return err
	}
	if err := types.ValidateRequired(password, "password"); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/auth/reset-password", types.ResetPasswordRequest{Token: token, Password: password})
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "reset password", http.StatusOK, nil)
}
