// Package memberlist keeps ordered lists of documented members and the
// per-kind counts page generators use to decide which sections to write.
package memberlist

import "fmt"

// Type is the kind of a documented member.
type Type int

const (
	Define Type = iota
	Function
	Variable
	Typedef
	Enumeration
	EnumValue
	Prototype
	Signal
	Slot
	Friend
)

var typeNames = map[Type]string{
	Define:      "define",
	Function:    "function",
	Variable:    "variable",
	Typedef:     "typedef",
	Enumeration: "enum",
	EnumValue:   "enumvalue",
	Prototype:   "prototype",
	Signal:      "signal",
	Slot:        "slot",
	Friend:      "friend",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a manifest name back to a Type.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown member type %q", s)
}

// Member is a documentable entity owned by some scope. Lists only keep
// references to members; they never copy or own them.
type Member interface {
	Name() string
	MemberType() Type
	// BriefVisible reports whether the member shows in declaration lists.
	BriefVisible() bool
	// DetailedVisible reports whether the member gets a documentation block.
	DetailedVisible() bool
	// Group is the documentation group the member belongs to, or "".
	Group() string
	// Related is set for functions documented as related to a class they
	// are not a member of.
	Related() bool
	HasClass() bool
	// HasDefinition is set for defines with arguments or an initializer.
	HasDefinition() bool
	HasDocumentation() bool
}

// Def is a plain Member implementation, used for manifests and tests.
type Def struct {
	ID         string `yaml:"name"`
	Kind       Type   `yaml:"-"`
	Brief      bool   `yaml:"brief"`
	Detailed   bool   `yaml:"detailed"`
	GroupName  string `yaml:"group"`
	IsRelated  bool   `yaml:"related"`
	InClass    bool   `yaml:"in_class"`
	Definition bool   `yaml:"definition"`
	Documented bool   `yaml:"documented"`
}

func (d *Def) Name() string           { return d.ID }
func (d *Def) MemberType() Type       { return d.Kind }
func (d *Def) BriefVisible() bool     { return d.Brief }
func (d *Def) DetailedVisible() bool  { return d.Detailed }
func (d *Def) Group() string          { return d.GroupName }
func (d *Def) Related() bool          { return d.IsRelated }
func (d *Def) HasClass() bool         { return d.InClass }
func (d *Def) HasDefinition() bool    { return d.Definition }
func (d *Def) HasDocumentation() bool { return d.Documented }
