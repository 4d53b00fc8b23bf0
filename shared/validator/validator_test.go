package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/validator"
)

type createGuestPayload struct {
	FullName string `validate:"required"                                json:"full_name"`
	Email    string `validate:"omitempty,email"                         json:"email"`
	Phone    string `validate:"required,min=7,max=20"                   json:"phone"`
	IDType   string `validate:"omitempty,oneof=passport driving_license national_id" json:"id_type"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *createGuestPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: &createGuestPayload{
				FullName: "Asha Rao",
				Email:    "asha@example.com",
				Phone:    "+91-9876543210",
				IDType:   "passport",
			},
		},
		{
			name: "missing required name",
			data: &createGuestPayload{
				Phone: "+91-9876543210",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &createGuestPayload{
				FullName: "Asha Rao",
				Email:    "not-an-email",
				Phone:    "+91-9876543210",
			},
			expectError: true,
		},
		{
			name: "phone too short",
			data: &createGuestPayload{
				FullName: "Asha Rao",
				Phone:    "123",
			},
			expectError: true,
		},
		{
			name: "unknown id type",
			data: &createGuestPayload{
				FullName: "Asha Rao",
				Phone:    "+91-9876543210",
				IDType:   "library_card",
			},
			expectError: true,
		},
		{
			name: "optional fields omitted",
			data: &createGuestPayload{
				FullName: "Asha Rao",
				Phone:    "+91-9876543210",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid body",
			body: `{"full_name":"Asha Rao","phone":"+91-9876543210"}`,
		},
		{
			name:        "malformed json",
			body:        `{"full_name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"phone":"123"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload createGuestPayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:  "valid uuid",
			field: "550e8400-e29b-41d4-a716-446655440000",
			tag:   "uuid",
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
		{
			name:  "valid oneof",
			field: "reserved",
			tag:   "oneof=pending reserved confirmed",
		},
		{
			name:        "invalid oneof",
			field:       "archived",
			tag:         "oneof=pending reserved confirmed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
