package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
)

// ListDepartments retrieves all departments.
func ListDepartments(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Department, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/departments", nil)
	if err != nil {
		return nil, err
	}
	var ds []types.Department
	if err := do(httpClient, httpReq, "list departments", http.StatusOK, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// CreateDepartment adds a department.
func CreateDepartment(ctx context.Context, httpClient *http.Client, baseURL string, req types.DepartmentRequest) (*types.Department, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/departments", req)
	if err != nil {
		return nil, err
	}
	var d types.Department
	if err := do(httpClient, httpReq, "create department", http.StatusCreated, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDepartment edits a department.
func UpdateDepartment(ctx context.Context, httpClient *http.Client, baseURL, id string, req types.DepartmentRequest) (*types.Department, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(id, "departmentId"); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/departments/%s", baseURL, id), req)
	if err != nil {
		return nil, err
	}
	var d types.Department
	if err := do(httpClient, httpReq, "update department", http.StatusOK, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDepartment removes a department.
func DeleteDepartment(ctx context.Context, httpClient *http.Client, baseURL, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(id, "departmentId"); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/departments/%s", baseURL, id), nil)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "delete department", http.StatusOK, nil)
}
