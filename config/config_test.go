package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want 9090", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want fallback", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EMPTY) = %q, want empty string (key is present)", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString on nil map = %q, want default", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	if got := GetInt(c, "TIMEOUT", 180); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(c, "BAD", 180); got != 180 {
		t.Errorf("GetInt(BAD) = %d, want default", got)
	}
	if got := GetInt(c, "MISSING", 180); got != 180 {
		t.Errorf("GetInt(MISSING) = %d, want default", got)
	}
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"A": "true", "B": "FALSE", "C": "yes"}

	if !GetBool(c, "A", false) {
		t.Error("GetBool(A) = false, want true")
	}
	if GetBool(c, "B", true) {
		t.Error("GetBool(B) = true, want false")
	}
	if !GetBool(c, "C", true) {
		t.Error("GetBool(C) with unparseable value should fall back to default")
	}
}
