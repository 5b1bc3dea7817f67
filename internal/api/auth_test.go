package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saadoxyz/safepass-go/internal/apierr"
	"github.com/Saadoxyz/safepass-go/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access_token":"tok-123","user":{"id":"u1","name":"Hina","email":"hina@example.com","role":"host"}}`))
	}))
	defer srv.Close()

	lr, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "hina@example.com", Password: "secret"})
	if err != nil || lr.AccessToken != "tok-123" || lr.User.Role != "host" {
		t.Fatalf("Login unexpected: lr=%+v err=%v", lr, err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "a@b.c", Password: "nope"})
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Fatalf("expected extracted message, got %v", err)
	}
}

func TestLogin_LocalValidation(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("must not hit the network")
	}))
	defer srv.Close()

	if _, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "no-at-sign", Password: "x"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := ForgotPassword(context.Background(), srv.Client(), srv.URL, ""); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := ResetPassword(context.Background(), srv.Client(), srv.URL, "", "pw"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestForgotAndResetPassword_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"sent"}`))
	}))
	defer srv.Close()

	if err := ForgotPassword(context.Background(), srv.Client(), srv.URL, "host@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if err := ResetPassword(context.Background(), srv.Client(), srv.URL, "reset-tok", "newpw"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
}
