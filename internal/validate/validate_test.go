package validate

import "testing"

func TestPhoneVN(t *testing.T) {
	valid := []string{"+84901234567", "0901234567", "0351234567", "+84781234567"}
	for _, number := range valid {
		if !IsPhoneVN(number) {
			t.Fatalf("expected %q to be valid", number)
		}
	}
	invalid := []string{"12345", "", "+8490123456", "09012345678", "84901234567", "+84201234567"}
	for _, number := range invalid {
		if IsPhoneVN(number) {
			t.Fatalf("expected %q to be invalid", number)
		}
	}
}

func TestRequired(t *testing.T) {
	v := New()
	v.Required("FullName", "  ")
	v.Required("Email", "a@b.co")
	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 1 || issues[0].Field != "FullName" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestPositiveID(t *testing.T) {
	v := New()
	v.PositiveID("DepartmentID", 0)
	v.PositiveID("PositionID", 3)
	issues := v.Issues()
	if len(issues) != 1 || issues[0].Field != "DepartmentID" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestEmail(t *testing.T) {
	v := New()
	v.Email("Email", "nguyen@example.com")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}
	v.Email("Email", "not-an-email")
	if !v.HasIssues() {
		t.Fatal("expected issue for malformed email")
	}
}

func TestMessageIsStableAndReadable(t *testing.T) {
	v := New()
	v.Required("FullName", "")
	v.PositiveID("DepartmentID", -1)
	msg := v.Message()
	want := "DepartmentID must be a positive integer; FullName is required"
	if msg != want {
		t.Fatalf("expected %q, got %q", want, msg)
	}
}
