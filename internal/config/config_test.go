package config

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("BREVET_TEST_KEY", "value")

	if got := Get("BREVET_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
	if got := Get("BREVET_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get missing = %q, want fallback", got)
	}

	t.Setenv("BREVET_TEST_EMPTY", "")
	if got := Get("BREVET_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Errorf("Get empty = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("BREVET_TEST_INT", "42")
	if got := GetInt("BREVET_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}

	if got := GetInt("BREVET_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("GetInt missing = %d, want 7", got)
	}

	t.Setenv("BREVET_TEST_INT_BAD", "not-a-number")
	if got := GetInt("BREVET_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetInt unparsable = %d, want 7", got)
	}
}
