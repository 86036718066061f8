// Package utils holds small helpers that don't belong to a domain package.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// PrintJSON writes v to w as tab-indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("marshalling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// PrettyJSON re-indents a raw JSON document. Input that is not JSON is
// returned unchanged with ok=false.
func PrettyJSON(raw []byte) (out []byte, ok bool) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "\t"); err != nil {
		return raw, false
	}
	return buf.Bytes(), true
}
