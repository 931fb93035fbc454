package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"EMP000001", "FIN123456", "abc", "A1B2C3D4E5F6G7H8I9J0"}
	invalid := []string{"", "ab", "EMP-000001", "EMP 000001", "A1B2C3D4E5F6G7H8I9J0X"}
	for _, code := range valid {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"081234567890", "+62 812 3456 7890", "0812-3456-789"}
	invalid := []string{"12345", "phone number", "0812345678901234567", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestMaxLen(t *testing.T) {
	if !MaxLen("abc", 3) {
		t.Error("MaxLen(\"abc\", 3) = false, want true")
	}
	if MaxLen("abcd", 3) {
		t.Error("MaxLen(\"abcd\", 3) = true, want false")
	}
	// Rune count, not byte count.
	if !MaxLen("héllo", 5) {
		t.Error("MaxLen(\"héllo\", 5) = false, want true")
	}
}

func TestFirst_ReturnsOnlyFirstViolation(t *testing.T) {
	err := First(
		Rule{Field: "a", Message: "a failed", Valid: func() bool { return false }},
		Rule{Field: "b", Message: "b failed", Valid: func() bool { return false }},
	)
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("First returned %T, want ValidationErrors", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "a" {
		t.Errorf("First = %v, want single violation on field a", verrs)
	}
}

func TestFirst_AllPass(t *testing.T) {
	err := First(
		Rule{Field: "a", Message: "a failed", Valid: func() bool { return true }},
	)
	if err != nil {
		t.Errorf("First = %v, want nil", err)
	}
}

func TestAll_AccumulatesEveryViolation(t *testing.T) {
	errs := All(
		Rule{Field: "a", Message: "a failed", Valid: func() bool { return false }},
		Rule{Field: "b", Message: "b failed", Valid: func() bool { return true }},
		Rule{Field: "c", Message: "c failed", Valid: func() bool { return false }},
	)
	if len(errs) != 2 {
		t.Fatalf("All returned %d violations, want 2", len(errs))
	}
	if errs[0].Field != "a" || errs[1].Field != "c" {
		t.Errorf("All = %v, want violations on a and c in order", errs)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email format is invalid"},
		{Field: "name", Message: "name is required"},
	}
	m := errs.ToMap()
	if m["email"] != "email format is invalid" || m["name"] != "name is required" {
		t.Errorf("ToMap = %v", m)
	}
}
