package logger

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"fill YC form", "fill_YC_form"},
		{"research: CI/CD tools?", "research__CI_CD_tools_"},
		{"", "task"},
		{"ok-name_123", "ok-name_123"},
	}
	for _, tc := range cases {
		if got := sanitize(tc.in); got != tc.want {
			t.Errorf("sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	if got := sanitize(string(long)); len(got) != 60 {
		t.Errorf("len = %d, want 60", len(got))
	}
}

func TestNopLoggerWithField(t *testing.T) {
	l := NewNop()
	child := l.WithField("component", "test")
	child.Info("message", "key", "value")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
