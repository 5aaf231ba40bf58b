package encode

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/keygrove/keygrove/parse"
)

func TestEncodeNormalizes(t *testing.T) {
	src := `
# comment
top = 1

[a]
s = "x\ny"
arr = [1, [2, 3]]

[a.b]
ok = true
`
	d, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	got, err := String(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `top = 1

[a]
s = "x\ny"
arr = [1, [2, 3]]

[a.b]
ok = true
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := "k = \"a \\\"b\\\"\"\n\n[g]\nv = [1.5, 2]\n"
	d, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	out := MustString(d)
	d2, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, out)
	}
	if MustString(d2) != out {
		t.Errorf("not stable:\n%s\nvs\n%s", MustString(d2), out)
	}
}

func TestEncodeColorsCover(t *testing.T) {
	d, err := parse.Parse([]byte("n = 1\ns = \"v\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	// Colored output must still contain the payload bytes.
	got, err := String(d, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{"n", "1", "s", `"v"`} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in %q", frag, got)
		}
	}
}

type tlsConf struct {
	Enabled bool
	Min     float64
}

type srvConf struct {
	Name  string
	Port  int
	Hosts []string
	Since time.Time
	TLS   *tlsConf
}

var tlsSchema = &Schema{Fields: []Field{
	{Name: "enabled", Get: func(v any) any { return v.(*tlsConf).Enabled }},
	{Name: "min_version", Get: func(v any) any { return v.(*tlsConf).Min }},
}}

var srvSchema = &Schema{Fields: []Field{
	{Name: "name", Get: func(v any) any { return v.(*srvConf).Name }},
	{Name: "port", Get: func(v any) any { return v.(*srvConf).Port }},
	{Name: "hosts", Get: func(v any) any { return v.(*srvConf).Hosts }},
	{Name: "since", Get: func(v any) any { return v.(*srvConf).Since }},
	{Name: "tls", Group: tlsSchema, Get: func(v any) any {
		c := v.(*srvConf).TLS
		if c == nil {
			return nil
		}
		return c
	}},
}}

func TestMarshal(t *testing.T) {
	v := &srvConf{
		Name:  "edge",
		Port:  8080,
		Hosts: []string{"a", "b"},
		Since: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TLS:   &tlsConf{Enabled: true, Min: 1.2},
	}
	b := &strings.Builder{}
	if err := Marshal(b, "server", v, srvSchema); err != nil {
		t.Fatal(err)
	}
	want := `[server]
name = "edge"
port = 8080
hosts = ["a", "b"]
since = 2024-05-01T00:00:00Z

[server.tls]
enabled = true
min_version = 1.2
`
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
	// Output must reparse.
	if _, err := parse.Parse([]byte(b.String())); err != nil {
		t.Errorf("reparse: %v", err)
	}
}

func TestMarshalNilGroupSkipped(t *testing.T) {
	b := &strings.Builder{}
	if err := Marshal(b, "server", &srvConf{Name: "x"}, srvSchema); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "tls") {
		t.Errorf("nil nested object emitted:\n%s", b.String())
	}
}

func TestMarshalComplexArray(t *testing.T) {
	s := &Schema{Fields: []Field{
		{Name: "bad", Get: func(v any) any { return []any{map[string]any{"x": 1}} }},
	}}
	err := Marshal(&strings.Builder{}, "r", struct{}{}, s)
	if !errors.Is(err, ErrComplexArray) {
		t.Fatalf("got %v, want ErrComplexArray", err)
	}
}

func TestMarshalUnsupported(t *testing.T) {
	s := &Schema{Fields: []Field{
		{Name: "bad", Get: func(v any) any { return make(chan int) }},
	}}
	err := Marshal(&strings.Builder{}, "r", struct{}{}, s)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}
