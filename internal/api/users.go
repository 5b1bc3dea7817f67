package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
)

// GetProfile retrieves the authenticated user's own profile.
func GetProfile(ctx context.Context, httpClient *http.Client, baseURL string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/users/profile", nil)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := do(httpClient, httpReq, "get profile", http.StatusOK, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile edits the authenticated user's own profile.
func UpdateProfile(ctx context.Context, httpClient *http.Client, baseURL string, req types.UpdateProfileRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, baseURL+"/users/profile/update", req)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := do(httpClient, httpReq, "update profile", http.StatusOK, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers retrieves all staff users (admin).
func ListUsers(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/users", nil)
	if err != nil {
		return nil, err
	}
	var us []types.User
	if err := do(httpClient, httpReq, "list users", http.StatusOK, &us); err != nil {
		return nil, err
	}
	return us, nil
}

// ListAvailableHosts retrieves the public list of hosts a visitor can
// register against. Used by the unauthenticated registration flow.
func ListAvailableHosts(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/users/public/hosts", nil)
	if err != nil {
		return nil, err
	}
	var us []types.User
	if err := do(httpClient, httpReq, "list available hosts", http.StatusOK, &us); err != nil {
		return nil, err
	}
	return us, nil
}

// CreateUser adds a staff user (admin).
func CreateUser(ctx context.Context, httpClient *http.Client, baseURL string, req types.UserRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := types.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Role, "role"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/users", req)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := do(httpClient, httpReq, "create user", http.StatusCreated, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser edits a staff user (admin).
func UpdateUser(ctx context.Context, httpClient *http.Client, baseURL, userID string, req types.UserRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/users/%s", baseURL, userID), req)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := do(httpClient, httpReq, "update user", http.StatusOK, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a staff user (admin).
func DeleteUser(ctx context.Context, httpClient *http.Client, baseURL, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/users/%s", baseURL, userID), nil)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "delete user", http.StatusOK, nil)
}
