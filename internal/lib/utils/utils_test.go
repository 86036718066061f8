package utils

import (
	"bytes"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n\t\"count\": 2\n}\n" {
		t.Errorf("PrintJSON() wrote %q", got)
	}

	if err := PrintJSON(&buf, func() {}); err == nil {
		t.Error("PrintJSON() should fail on unsupported values")
	}
}

func TestPrettyJSON(t *testing.T) {
	out, ok := PrettyJSON([]byte(`{"a":[1]}`))
	if !ok || string(out) != "{\n\t\"a\": [\n\t\t1\n\t]\n}" {
		t.Errorf("PrettyJSON() = %q, %v", out, ok)
	}

	if out, ok := PrettyJSON([]byte("<html>")); ok || string(out) != "<html>" {
		t.Errorf("PrettyJSON(non-json) = %q, %v", out, ok)
	}
}
