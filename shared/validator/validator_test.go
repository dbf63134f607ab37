package validator_test

import (
	"strings"
	"testing"
	"tripdesk/shared/validator"
)

func TestValidateVar_CustomerID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{
			name:        "plain numeric id",
			input:       "104",
			expectError: false,
		},
		{
			name:        "long numeric id",
			input:       "999999",
			expectError: false,
		},
		{
			name:        "alphabetic input",
			input:       "abc",
			expectError: true,
		},
		{
			name:        "mixed input",
			input:       "12a4",
			expectError: true,
		},
		{
			name:        "negative number",
			input:       "-104",
			expectError: true,
		},
		{
			name:        "decimal number",
			input:       "10.4",
			expectError: true,
		},
		{
			name:        "embedded whitespace",
			input:       "10 4",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.input, "required,customerid")

			if tt.expectError && err == nil {
				t.Errorf("expected error for input %q, got nil", tt.input)
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error for input %q, got %v", tt.input, err)
			}
		})
	}
}

type lookupRequest struct {
	CustomerID string `validate:"required,customerid" json:"customer_id"`
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	req := lookupRequest{}
	err := validator.Validate(strings.NewReader(`{"customer_id":"104"}`), &req)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if req.CustomerID != "104" {
		t.Errorf("expected customer_id to be 104, got %s", req.CustomerID)
	}
}

func TestValidate_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `{"customer_id":`,
		},
		{
			name: "non numeric id",
			body: `{"customer_id":"abc"}`,
		},
		{
			name: "missing id",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := lookupRequest{}
			if err := validator.Validate(strings.NewReader(tt.body), &req); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
