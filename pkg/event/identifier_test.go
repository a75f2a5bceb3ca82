package event

import "testing"

func TestValidateIdentifier(t *testing.T) {
	bad := []string{
		"",
		"abc",
		"42",
		"3f2a8c1e-5b7d-4e9a-8c3b",
		"zz2a8c1e-5b7d-4e9a-8c3b-1d2e4f5a6b7c",
	}
	for _, s := range bad {
		if err := ValidateIdentifier(s); err == nil {
			t.Fatalf("identifier %q accepted", s)
		}
	}

	good := []string{
		// v4
		"3f2a8c1e-5b7d-4e9a-8c3b-1d2e4f5a6b7c",
		// v1: format-only check is independent of version
		"c232ab00-9414-11ec-b3c8-9f68deced846",
		// uppercase
		"3F2A8C1E-5B7D-4E9A-8C3B-1D2E4F5A6B7C",
	}
	for _, s := range good {
		if err := ValidateIdentifier(s); err != nil {
			t.Fatalf("identifier %q rejected: %v", s, err)
		}
	}
}

func TestValidateIdentifierV4(t *testing.T) {
	if err := ValidateIdentifierV4("3f2a8c1e-5b7d-4e9a-8c3b-1d2e4f5a6b7c"); err != nil {
		t.Fatal(err)
	}
	// syntactically valid v1 UUID must fail the strict check
	if err := ValidateIdentifierV4("c232ab00-9414-11ec-b3c8-9f68deced846"); err == nil {
		t.Fatal("v1 uuid passed the v4 check")
	}
	if err := ValidateIdentifierV4("nope"); err == nil {
		t.Fatal("malformed uuid passed the v4 check")
	}
}
