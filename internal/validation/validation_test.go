package validation_test

import (
	"errors"
	"testing"

	"github.com/spec-kit/bizcard-service/internal/api/dto"
	"github.com/spec-kit/bizcard-service/internal/validation"
	apperrors "github.com/spec-kit/bizcard-service/pkg/util"
)

func validRegister() dto.UserRegisterRequest {
	return dto.UserRegisterRequest{
		Name:     "Dana Levi",
		Email:    "dana@example.com",
		Password: "Test1234",
		Phone:    "0501234567",
		Address:  "1 Herzl St, Tel Aviv",
	}
}

func TestStruct_ValidPayload(t *testing.T) {
	if err := validation.Struct(validRegister()); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestStruct_FieldFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.UserRegisterRequest)
	}{
		{"missing name", func(r *dto.UserRegisterRequest) { r.Name = "" }},
		{"bad email", func(r *dto.UserRegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *dto.UserRegisterRequest) { r.Password = "abc" }},
		{"phone too short", func(r *dto.UserRegisterRequest) { r.Phone = "050123" }},
		{"phone not numeric", func(r *dto.UserRegisterRequest) { r.Phone = "05012345ab" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)

			err := validation.Struct(req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var derr *apperrors.DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DomainError, got %T", err)
			}
			if derr.Code != "VALIDATION_FAILED" {
				t.Errorf("code = %q, want VALIDATION_FAILED", derr.Code)
			}
			if derr.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestStruct_CardBounds(t *testing.T) {
	card := dto.CardRequest{
		Title:       "ab", // below min=3
		Description: "a plumbing business in the city center",
		Phone:       "0501234567",
	}
	err := validation.Struct(card)
	if err == nil {
		t.Fatal("expected validation error for short title")
	}
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) || derr.Code != "VALIDATION_FAILED" {
		t.Fatalf("unexpected error: %v", err)
	}
}
