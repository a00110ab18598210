package memberlist

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

type manifestEntry struct {
	Def  `yaml:",inline"`
	Type string `yaml:"type"`
}

type manifest struct {
	Sorted  bool            `yaml:"sorted"`
	Members []manifestEntry `yaml:"members"`
}

// LoadManifest reads a YAML member manifest:
//
//	sorted: true
//	members:
//	  - name: open
//	    type: function
//	    brief: true
//
// Members are inserted by name when sorted is set and appended otherwise.
func LoadManifest(r io.Reader, policy CountPolicy, log *slog.Logger) (*List, error) {
	var m manifest
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	l := New(ByName, policy, log)
	for i, e := range m.Members {
		t, err := ParseType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("member %d (%s): %w", i, e.ID, err)
		}
		d := e.Def
		d.Kind = t
		if m.Sorted {
			l.InsertSorted(&d)
		} else {
			l.Append(&d)
		}
	}
	return l, nil
}
