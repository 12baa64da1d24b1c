package validation

import "testing"

func TestValidUserID(t *testing.T) {
	t.Parallel()

	valid := []string{
		"abcd",
		"Traveler1",
		"a123",
		"Z9999999999999999999", // 20 chars
	}
	for _, s := range valid {
		if !ValidUserID(s) {
			t.Errorf("ValidUserID(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"abc",                   // too short
		"1abcd",                 // must start with a letter
		"has space",             // no spaces
		"under_score",           // letters and digits only
		"한글아이디",                 // ascii only
		"a12345678901234567890", // 21 chars
	}
	for _, s := range invalid {
		if ValidUserID(s) {
			t.Errorf("ValidUserID(%q) = true, want false", s)
		}
	}
}
