package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

const manifest = `sorted: true
members:
  - name: open
    type: function
    brief: true
    detailed: true
  - name: close
    type: function
    brief: true
  - name: Pal
    type: friend
    brief: true
`

func TestMembers_Table(t *testing.T) {
	path := writeFile(t, t.TempDir(), "members.yaml", manifest)

	out, err := execute(t, "members", path, "--lang", "es")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if f := strings.Fields(lines[0]); len(f) != 2 || f[0] != "Funciones" || f[1] != "2" {
		t.Errorf("expected functions first, got %q", lines[0])
	}
	if f := strings.Fields(lines[2]); f[len(f)-1] != "2" {
		t.Errorf("expected friends excluded from total, got %q", lines[2])
	}
}

func TestMembers_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "members.yaml", manifest)

	out, err := execute(t, "members", path, "--json", "--documented", "--include-friends")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	var body struct {
		Members  int `json:"members"`
		Total    int `json:"total"`
		Sections []struct {
			Title string `json:"title"`
			Count int    `json:"count"`
		} `json:"sections"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if body.Members != 3 {
		t.Errorf("expected 3 members, got %d", body.Members)
	}
	if len(body.Sections) != 1 || body.Sections[0].Title != "Functions" || body.Sections[0].Count != 1 {
		t.Errorf("expected one documented function, got %+v", body.Sections)
	}
}

func TestMembers_BadManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "members:\n  - name: x\n    type: bogus\n")
	if _, err := execute(t, "members", path); err == nil {
		t.Fatal("expected error for unknown member type")
	}
}
