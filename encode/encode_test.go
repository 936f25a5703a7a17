package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vortex-format/go-vcfg/format"
	"github.com/vortex-format/go-vcfg/parse"
)

const encodeInput = `
name = demo
[server]
port = 8080
limits = {max=100, burst=250}
hosts = [a, b]
unset = ""
`

func encodeString(t *testing.T, in string, opts ...EncodeOption) string {
	t.Helper()
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var sb strings.Builder
	if err := Encode(doc, &sb, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return sb.String()
}

func TestEncodeTree(t *testing.T) {
	want := `name = demo
[server]
port = 8080
limits = {object}
  max = 100
  burst = 250
hosts = [array]
  0 = a
  1 = b
unset = <unset>
`
	got := encodeString(t, encodeInput)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("tree output mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "name": "demo",
  "server": {
    "port": "8080",
    "limits": {
      "max": "100",
      "burst": "250"
    },
    "hosts": [
      "a",
      "b"
    ],
    "unset": null
  }
}
`
	got := encodeString(t, encodeInput, EncodeFormat(format.JSONFormat))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("json output mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeJSONOrderFollowsInput(t *testing.T) {
	// keys in reverse lexical order must come out in parse order
	got := encodeString(t, "z=1 y=2 a=3", EncodeFormat(format.JSONFormat))
	zi := strings.Index(got, `"z"`)
	yi := strings.Index(got, `"y"`)
	ai := strings.Index(got, `"a"`)
	if zi < 0 || yi < 0 || ai < 0 || !(zi < yi && yi < ai) {
		t.Errorf("member order: %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	want := `name: demo
server:
  port: "8080"
  limits:
    max: "100"
    burst: "250"
  hosts:
  - a
  - b
  unset: null
`
	got := encodeString(t, encodeInput, EncodeFormat(format.YAMLFormat))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("yaml output mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeIndent(t *testing.T) {
	got := encodeString(t, "o={a=1}", Indent(4))
	want := `o = {object}
    a = 1
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("indent mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeEmptyJSON(t *testing.T) {
	got := encodeString(t, " \n", EncodeFormat(format.JSONFormat))
	if got != "{}\n" {
		t.Errorf(`empty json: got %q want "{}\n"`, got)
	}
}
