package core

import "testing"

func TestValidateCollection_ValidDocument(t *testing.T) {
	raw := []byte(`{"collection":{"info":{"name":"API"},"item":[]}}`)
	problems, err := ValidateCollection(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}

func TestValidateCollection_ReportsViolations(t *testing.T) {
	raw := []byte(`{"collection":{"info":{}}}`)
	problems, err := ValidateCollection(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) == 0 {
		t.Error("expected violations for a document missing name and item")
	}
}

func TestValidateCollection_MalformedJSON(t *testing.T) {
	if _, err := ValidateCollection([]byte("{oops")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
