package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keygrove/keygrove/doc"
	"github.com/keygrove/keygrove/token"
)

const sample = `
# service config
name = "edge"

[server]
port = 8080
hosts = ["a.example", "b.example"]

[server.tls]
enabled = true
min_version = 1.2
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]string{
		"name":                   "edge",
		"server.port":            "8080",
		"server.tls.enabled":     "true",
		"server.tls.min_version": "1.2",
	} {
		e, err := d.GetValue(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if e.Text != want {
			t.Errorf("%s: got %q, want %q", path, e.Text, want)
		}
	}
	hosts, err := doc.ArrayOf[string](d, "server.hosts")
	if err != nil {
		t.Fatal(err)
	}
	if len(hosts) != 2 || hosts[0] != "a.example" {
		t.Errorf("hosts: %v", hosts)
	}
}

func TestParseDottedKeys(t *testing.T) {
	d, err := Parse([]byte("a.b.c = 1\n[a.b]\nd = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"a.b.c", "a.b.d"} {
		if _, err := d.GetValue(path); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
	if g, ok := d.ResolveGroup("a.b"); !ok || len(g.Items()) != 2 {
		t.Errorf("a.b group: ok=%v", ok)
	}
}

func TestParseDuplicate(t *testing.T) {
	_, err := Parse([]byte("x = 1\nx = 2\n"))
	if !errors.Is(err, doc.ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("ok = 1\nbad 2\n"))
	var serr *token.ScanErr
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *token.ScanErr", err)
	}
	if serr.Pos.Line != 2 {
		t.Errorf("line: got %d, want 2", serr.Pos.Line)
	}
}

func TestParseIncomplete(t *testing.T) {
	_, err := Parse([]byte(`v = [1, 2`))
	if !errors.Is(err, token.ErrIncomplete) {
		t.Fatalf("got %v, want ErrIncomplete", err)
	}
}

func TestParseReader(t *testing.T) {
	d, err := ParseReader(strings.NewReader("k = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := doc.Field[bool](d, "k")
	if err != nil || !v {
		t.Fatalf("k: %v %v", v, err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.kg")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.GetValue("server.port"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.kg")); err == nil {
		t.Fatal("expected open error")
	}
}

func TestParseWithRoot(t *testing.T) {
	d, err := Parse([]byte("[a]\nx = 1\n"), WithRoot("env.prod"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.GetValue("env.prod.a.x"); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.TryGetValue("a.x"); ok {
		t.Fatal("value visible outside of root prefix")
	}
}
