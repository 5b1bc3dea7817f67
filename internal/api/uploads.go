package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
)

// UploadProfileImage uploads an image via multipart form and returns the
// stored resource URL.
func UploadProfileImage(ctx context.Context, httpClient *http.Client, baseURL, filename string, r io.Reader) (*types.UploadResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(filename, "filename"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/upload/profile-image", &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var ur types.UploadResponse
	if err := do(httpClient, httpReq, "upload profile image", http.StatusCreated, &ur); err != nil {
		return nil, err
	}
	if ur.ImageURL == "" {
		return nil, fmt.Errorf("upload profile image: response carried no imageUrl")
	}
	return &ur, nil
}
