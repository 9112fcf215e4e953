package rules

import (
	"bytes"
	"strings"
	"testing"
)

func TestListTool(t *testing.T) {
	buf := &bytes.Buffer{}
	tool := &ListTool{W: buf}
	if err := tool.Run(Default(), nil, "dist/index.html", nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"list", "rules", "status"} {
		if !strings.Contains(buf.String(), name+" - ") {
			t.Errorf("missing tool %q in listing", name)
		}
	}
}

func TestRulesTool(t *testing.T) {
	buf := &bytes.Buffer{}
	tool := &RulesTool{W: buf}
	if err := tool.Run(Default(), nil, "dist/index.html", nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "title: s|") {
		t.Errorf("missing title rule in %q", out)
	}
	if !strings.Contains(out, "favicon: s|") {
		t.Errorf("missing favicon rule in %q", out)
	}
	if !strings.Contains(out, "(dist/*.html)") {
		t.Errorf("missing rule scope in %q", out)
	}
}

func TestStatusTool(t *testing.T) {
	db := NewDatabase(t.TempDir())
	buf := &bytes.Buffer{}
	tool := &StatusTool{W: buf, Db: db}

	if err := tool.Run(Default(), []byte(input), "dist/index.html", nil); err != nil {
		t.Fatal(err)
	}
	want := "title: 1 match\nfavicon: 1 match\ndist/index.html: not patched\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	doc, _ := Default().Apply([]byte(input), "dist/index.html")
	db.Record("dist/index.html", doc)

	buf.Reset()
	if err := tool.Run(Default(), doc, "dist/index.html", nil); err != nil {
		t.Fatal(err)
	}
	want = "title: 0 matches\nfavicon: 0 matches\ndist/index.html: patched\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
