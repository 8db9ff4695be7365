package routes

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCreatePersonBodyValidation(t *testing.T) {
	v := validator.New()

	// No field is mandatory; anonymous or partially-known subjects are
	// valid records.
	if err := v.Struct(createPersonBody{}); err != nil {
		t.Fatalf("empty body should pass validation: %v", err)
	}

	first := "Ada"
	if err := v.Struct(createPersonBody{FirstName: &first}); err != nil {
		t.Fatalf("name-only body should pass validation: %v", err)
	}

	bad := "EXTREME"
	if err := v.Struct(createPersonBody{RiskLevel: &bad}); err == nil {
		t.Fatal("expected validation error for unknown risk level")
	}

	badDate := "yesterday"
	if err := v.Struct(createPersonBody{DateOfBirth: &badDate}); err == nil {
		t.Fatal("expected validation error for malformed date of birth")
	}
}
