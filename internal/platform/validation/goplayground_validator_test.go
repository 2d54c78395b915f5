package validation_test

import (
	"testing"

	"comanda/internal/platform/validation"
)

type createOrderInput struct {
	TableNumber int    `json:"table_number" validate:"required,gt=0"`
	Status      string `json:"status" validate:"omitempty,oneof=pending ready paid"`
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	v := validation.NewGoPlaygroundValidator()

	tests := []struct {
		name       string
		input      createOrderInput
		wantFields []string
	}{
		{
			name:  "valid input",
			input: createOrderInput{TableNumber: 3, Status: "pending"},
		},
		{
			name:       "missing table number",
			input:      createOrderInput{Status: "paid"},
			wantFields: []string{"table_number"},
		},
		{
			name:       "unknown status",
			input:      createOrderInput{TableNumber: 1, Status: "cancelled"},
			wantFields: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateStruct(tt.input)

			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("ValidateStruct() = %v, want: nil", errs)
				}
				return
			}

			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("ValidateStruct() missing error for field %q, got: %v", field, errs)
				}
			}
		})
	}
}
