package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// leaves walks a decoded document (built only from arrays and scalars, so
// iteration order is well-defined) and renders each scalar leaf the same way
// fmt's default verb would, as a flat ordered reference to compare the
// streamed demo's scalar lines against.
func leaves(v interface{}) []string {
	switch vv := v.(type) {
	case []interface{}:
		var out []string
		for _, child := range vv {
			out = append(out, leaves(child)...)
		}
		return out
	case nil:
		return []string{"null"}
	case bool:
		if vv {
			return []string{"true"}
		}
		return []string{"false"}
	case float64:
		if vv == float64(int64(vv)) {
			return []string{fmt.Sprintf("%d", int64(vv))}
		}
		return []string{fmt.Sprintf("%g", vv)}
	default:
		return []string{fmt.Sprintf("%v", vv)}
	}
}

// scalarLines extracts the trailing value token from each non-container
// line the demo renderer produced, in emission order.
func scalarLines(out string) []string {
	var got []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		trimmed := strings.TrimPrefix(strings.TrimLeft(line, " "), "- ")
		if strings.HasSuffix(trimmed, "{object}") || strings.HasSuffix(trimmed, "{array}") {
			continue
		}
		got = append(got, trimmed)
	}
	return got
}

// TestRunJSON2YAML_LeavesMatchYAMLRoundTrip decodes a JSON document with
// encoding/json, round-trips it through gopkg.in/yaml.v3 (Marshal then
// Unmarshal) as an independent reference for what its scalar leaves are, and
// checks the demo's streamed, deliberately-not-YAML output carries the same
// leaves in the same order. This is a structural cross-check, not a
// byte-equality check, since the demo's output is not valid YAML by design.
func TestRunJSON2YAML_LeavesMatchYAMLRoundTrip(t *testing.T) {
	const doc = `[1, 2.5, "three", null, true, false, [10, 20, "nested"], "four"]`

	var decoded interface{}
	if err := json.Unmarshal([]byte(doc), &decoded); err != nil {
		t.Fatalf("reference JSON decode failed: %v", err)
	}

	yamlBytes, err := yaml.Marshal(decoded)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var viaYAML interface{}
	if err := yaml.Unmarshal(yamlBytes, &viaYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	want := leaves(viaYAML)

	var out strings.Builder
	if err := runJSON2YAML(&out, strings.NewReader(doc), 4096, 32); err != nil {
		t.Fatalf("runJSON2YAML: %v", err)
	}
	got := scalarLines(out.String())

	if len(got) != len(want) {
		t.Fatalf("got %d scalar lines %v, want %d leaves %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestRunJSON2YAML_IntegerOverflowFallsBackToString mirrors the original
// driver's VKTOR_ERR_OUT_OF_RANGE handling: an integer literal too large
// for int64 must render as its literal text suffixed "## AS STRING ##",
// not silently as "0".
func TestRunJSON2YAML_IntegerOverflowFallsBackToString(t *testing.T) {
	const doc = `[99999999999999999999999999]`

	var out strings.Builder
	if err := runJSON2YAML(&out, strings.NewReader(doc), 4096, 32); err != nil {
		t.Fatalf("runJSON2YAML: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	got := strings.TrimSpace(lines[len(lines)-1])
	want := "- 99999999999999999999999999 ## AS STRING ##"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunJSON2YAML_ChunkedAndSingleShotAgree(t *testing.T) {
	const doc = `{"a": [1, 2.5, "three", null, true, false], "b": {"c": "d"}}`

	run := func(bufSize int) string {
		var out strings.Builder
		if err := runJSON2YAML(&out, strings.NewReader(doc), bufSize, 32); err != nil {
			t.Fatalf("runJSON2YAML(bufSize=%d): %v", bufSize, err)
		}
		return out.String()
	}

	full := run(64)
	tiny := run(1)
	if full != tiny {
		t.Fatalf("output differs between chunk sizes:\nfull=%q\ntiny=%q", full, tiny)
	}
}
