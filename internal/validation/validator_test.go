// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package validation

import (
	"strings"
	"testing"
)

type recommendRequest struct {
	UserID  string `validate:"required"`
	MovieID string `validate:"omitempty,min=1"`
	Limit   int    `validate:"gte=0,lte=50"`
}

type newUserRequest struct {
	PreferredGenres []string `validate:"required,min=1,dive,min=1"`
	PreferredActors []string `validate:"omitempty,dive,min=1"`
}

func TestValidateStructValid(t *testing.T) {
	req := recommendRequest{UserID: "user-1", MovieID: "4", Limit: 10}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	req := recommendRequest{Limit: 10}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error for missing UserID")
	}

	errs := verr.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field() != "UserID" {
		t.Errorf("Field() = %q; want UserID", errs[0].Field())
	}
	if errs[0].Tag() != "required" {
		t.Errorf("Tag() = %q; want required", errs[0].Tag())
	}
	if errs[0].Error() != "UserID is required" {
		t.Errorf("Error() = %q; want %q", errs[0].Error(), "UserID is required")
	}
}

func TestValidateStructRange(t *testing.T) {
	req := recommendRequest{UserID: "user-1", Limit: 100}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error for Limit out of range")
	}

	errs := verr.Errors()
	if errs[0].Error() != "Limit must be less than or equal to 50" {
		t.Errorf("Error() = %q", errs[0].Error())
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	req := newUserRequest{}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q; want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "PreferredGenres" {
		t.Errorf("Details[field] = %v; want PreferredGenres", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	req := recommendRequest{UserID: "", Limit: -1}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation errors")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "UserID") || !strings.Contains(apiErr.Message, "Limit") {
		t.Errorf("Message should mention both fields: %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] should list 2 entries, got %v", apiErr.Details["fields"])
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()
	if v1 != v2 {
		t.Error("GetValidator should return the same instance")
	}
}
