package util

import (
	"strings"
	"testing"
)

func TestMarshalNoEscape_KeepsHTMLRunes(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"text": "<b> & </b>"}, false)
	if err != nil {
		t.Fatalf("MarshalNoEscape() error = %v", err)
	}
	got := string(out)
	if strings.Contains(got, "u003c") || strings.Contains(got, "u0026") {
		t.Errorf("MarshalNoEscape() escaped HTML runes: %s", got)
	}
	if !strings.Contains(got, "<b> & </b>") {
		t.Errorf("MarshalNoEscape() altered the payload: %s", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("MarshalNoEscape() kept trailing newline: %q", got)
	}
}

func TestMarshalNoEscape_Indent(t *testing.T) {
	out, err := MarshalNoEscape(map[string]int{"distance": 3}, true)
	if err != nil {
		t.Fatalf("MarshalNoEscape() error = %v", err)
	}
	if !strings.Contains(string(out), "\n  ") {
		t.Errorf("MarshalNoEscape(indent) produced no indentation: %q", out)
	}
}
