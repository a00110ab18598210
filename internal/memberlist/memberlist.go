package memberlist

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Comparator orders two members. ok is false when the pair cannot be
// ordered.
type Comparator func(a, b Member) (cmp int, ok bool)

// ByName orders members by case-insensitive name and reports members with
// an empty name as unordered.
func ByName(a, b Member) (int, bool) {
	an, bn := a.Name(), b.Name()
	if an == "" || bn == "" {
		return 0, false
	}
	return strings.Compare(strings.ToLower(an), strings.ToLower(bn)), true
}

// CountPolicy tunes which members contribute to the total.
type CountPolicy struct {
	// IncludeFriends adds friend declarations to Total. They are always
	// counted in Friends.
	IncludeFriends bool
	// ExtractAll counts defines even when they carry no definition or
	// documentation.
	ExtractAll bool
}

// Counts is the result of a counting pass.
type Counts struct {
	Variables  int `json:"variables" yaml:"variables"`
	Functions  int `json:"functions" yaml:"functions"`
	Enums      int `json:"enums" yaml:"enums"`
	EnumValues int `json:"enum_values" yaml:"enum_values"`
	Typedefs   int `json:"typedefs" yaml:"typedefs"`
	Prototypes int `json:"prototypes" yaml:"prototypes"`
	Defines    int `json:"defines" yaml:"defines"`
	Friends    int `json:"friends" yaml:"friends"`
	Total      int `json:"total" yaml:"total"`
}

// List is an ordered sequence of member references with the counts from
// the last counting pass. Counts are not updated on insertion: call
// CountDeclared or CountDocumented after changing the list. A List is not
// safe for concurrent use.
type List struct {
	members []Member
	compare Comparator
	policy  CountPolicy
	counts  Counts
	log     *slog.Logger
}

// New creates an empty list ordered by compare. A nil compare makes every
// InsertSorted call append.
func New(compare Comparator, policy CountPolicy, log *slog.Logger) *List {
	if log == nil {
		log = slog.Default()
	}
	return &List{compare: compare, policy: policy, log: log}
}

// Len returns the number of members in the list.
func (l *List) Len() int { return len(l.members) }

// At returns the member at position i.
func (l *List) At(i int) Member { return l.members[i] }

// All iterates over the members in list order.
func (l *List) All() iter.Seq2[int, Member] {
	return func(yield func(int, Member) bool) {
		for i, m := range l.members {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Append adds m at the end, even if m is already in the list.
func (l *List) Append(m Member) {
	l.members = append(l.members, m)
}

// Contains reports whether m itself is in the list. Members are compared by
// identity, not by name.
func (l *List) Contains(m Member) bool {
	return slices.Contains(l.members, m)
}

// Insert places m at index, which must be in [0, Len()]. It reports false
// and leaves the list unchanged when index is out of range or m is already
// in the list.
func (l *List) Insert(index int, m Member) bool {
	if index < 0 || index > len(l.members) || l.Contains(m) {
		return false
	}
	l.members = append(l.members, nil)
	copy(l.members[index+1:], l.members[index:])
	l.members[index] = m
	return true
}

// InsertSorted inserts m after every member that does not order after it,
// keeping equal members in insertion order. If the comparator cannot order
// m against a member, m is appended and InsertSorted reports false. A
// member already in the list is not added again.
func (l *List) InsertSorted(m Member) bool {
	if l.Contains(m) {
		return false
	}
	if l.compare == nil {
		l.Append(m)
		return false
	}
	pos := len(l.members)
	for i, cur := range l.members {
		c, ok := l.compare(m, cur)
		if !ok {
			l.Append(m)
			return false
		}
		if c < 0 {
			pos = i
			break
		}
	}
	l.Insert(pos, m)
	return true
}

// Counts returns the counts of the last counting pass.
func (l *List) Counts() Counts { return l.counts }

func (l *List) VarCount() int       { return l.counts.Variables }
func (l *List) FuncCount() int      { return l.counts.Functions }
func (l *List) EnumCount() int      { return l.counts.Enums }
func (l *List) EnumValueCount() int { return l.counts.EnumValues }
func (l *List) TypedefCount() int   { return l.counts.Typedefs }
func (l *List) ProtoCount() int     { return l.counts.Prototypes }
func (l *List) DefineCount() int    { return l.counts.Defines }
func (l *List) FriendCount() int    { return l.counts.Friends }
func (l *List) TotalCount() int     { return l.counts.Total }

// CountDeclared recounts the members shown in declaration lists. Members of
// a documentation group are skipped unless includeGrouped is set, since
// they are listed on their group's page instead.
func (l *List) CountDeclared(includeGrouped bool) Counts {
	var c Counts
	for _, m := range l.members {
		if !m.BriefVisible() || (m.Group() != "" && !includeGrouped) {
			continue
		}
		switch m.MemberType() {
		case Variable:
			c.Variables++
			c.Total++
		case Function, Signal, Slot:
			if !m.Related() || m.HasClass() {
				c.Functions++
				c.Total++
			}
		case Enumeration:
			c.Enums++
			c.Total++
		case EnumValue:
			c.EnumValues++
			c.Total++
		case Typedef:
			c.Typedefs++
			c.Total++
		case Prototype:
			c.Prototypes++
			c.Total++
		case Define:
			if l.policy.ExtractAll || m.HasDefinition() || m.HasDocumentation() {
				c.Defines++
				c.Total++
			}
		case Friend:
			c.Friends++
			if l.policy.IncludeFriends {
				c.Total++
			}
		default:
			l.log.Warn("unknown member type", "member", m.Name(), "type", int(m.MemberType()))
		}
	}
	l.counts = c
	return c
}

// CountDocumented recounts the members that get a detailed documentation
// block. Enum values are documented inside their enum and do not add to
// the total.
func (l *List) CountDocumented() Counts {
	var c Counts
	for _, m := range l.members {
		if !m.DetailedVisible() {
			continue
		}
		switch m.MemberType() {
		case Variable:
			c.Variables++
		case Function, Signal, Slot:
			c.Functions++
		case Enumeration:
			c.Enums++
		case EnumValue:
			c.EnumValues++
			continue
		case Typedef:
			c.Typedefs++
		case Prototype:
			c.Prototypes++
		case Define:
			c.Defines++
		case Friend:
			c.Friends++
			if !l.policy.IncludeFriends {
				continue
			}
		default:
			l.log.Warn("unknown member type", "member", m.Name(), "type", int(m.MemberType()))
			continue
		}
		c.Total++
	}
	l.counts = c
	return c
}
