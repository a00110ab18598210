package doctree

// Word is a run of plain text.
type Word struct {
	Text string
}

// LinkedWord is a word that resolves to a documented entity. Ref is the
// external document set the target lives in; it is empty for local targets.
type LinkedWord struct {
	Text   string
	Ref    string
	File   string
	Anchor string
}

// Whitespace keeps the raw separator characters found by the parser.
type Whitespace struct {
	Chars string
}

// SymbolKind enumerates the special characters a Symbol can stand for.
type SymbolKind int

const (
	SymUnknown SymbolKind = iota
	SymBSlash
	SymAt
	SymLess
	SymGreater
	SymAmp
	SymDollar
	SymHash
	SymPercent
	SymCopy
	SymApos
	SymQuot
	SymUml
	SymAcute
	SymGrave
	SymCirc
	SymTilde
	SymCedil
	SymRing
	SymSzlig
	SymNbsp
)

// Symbol is an escaped or accented character. Letter is the base letter of
// the accented kinds (SymUml through SymRing) and zero otherwise.
type Symbol struct {
	Symbol SymbolKind
	Letter byte
}

// URL is a bare link found in the text.
type URL struct {
	Text string
}

// LineBreak forces a new line.
type LineBreak struct{}

// HorizontalRule separates blocks with a rule.
type HorizontalRule struct{}

// Formula holds an already rendered formula.
type Formula struct {
	Text string
}

// Anchor is a link target.
type Anchor struct {
	ID   string
	File string
}

// IncludeKind selects how an IncludeBlock is rendered.
type IncludeKind int

const (
	Include IncludeKind = iota
	DontInclude
	HTMLInclude
	VerbatimOnly
	VerbInclude
)

// IncludeBlock is the content of an included file.
type IncludeBlock struct {
	Type    IncludeKind
	Context string
	Text    string
}

// OperatorKind is the command that produced an IncludeOperator.
type OperatorKind int

const (
	OpLine OperatorKind = iota
	OpSkipLine
	OpSkip
	OpUntil
)

// IncludeOperator is one line range of a split code inclusion. A run of
// operators starts at the node with IsFirst set and ends at IsLast.
type IncludeOperator struct {
	Type    OperatorKind
	IsFirst bool
	IsLast  bool
	Context string
	Text    string
}

// Style is a character style toggled by StyleChange.
type Style int

const (
	Bold Style = iota
	Italic
	Code
	Subscript
	Superscript
	Center
	Small
)

// StyleChange switches Style on (Enable) or off.
type StyleChange struct {
	Style  Style
	Enable bool
}

// VerbatimKind tells which backends a Verbatim block targets.
type VerbatimKind int

const (
	VerbatimCode VerbatimKind = iota
	VerbatimText
	VerbatimHTMLOnly
	VerbatimLatexOnly
)

// Verbatim is a block of literal text or code.
type Verbatim struct {
	Type    VerbatimKind
	Context string
	Text    string
}

func (*Word) Kind() Kind            { return KindWord }
func (*LinkedWord) Kind() Kind      { return KindLinkedWord }
func (*Whitespace) Kind() Kind      { return KindWhitespace }
func (*Symbol) Kind() Kind          { return KindSymbol }
func (*URL) Kind() Kind             { return KindURL }
func (*LineBreak) Kind() Kind       { return KindLineBreak }
func (*HorizontalRule) Kind() Kind  { return KindHorizontalRule }
func (*Formula) Kind() Kind         { return KindFormula }
func (*Anchor) Kind() Kind          { return KindAnchor }
func (*IncludeBlock) Kind() Kind    { return KindIncludeBlock }
func (*IncludeOperator) Kind() Kind { return KindIncludeOperator }
func (*StyleChange) Kind() Kind     { return KindStyleChange }
func (*Verbatim) Kind() Kind        { return KindVerbatim }

func (*Word) docNode()            {}
func (*LinkedWord) docNode()      {}
func (*Whitespace) docNode()      {}
func (*Symbol) docNode()          {}
func (*URL) docNode()             {}
func (*LineBreak) docNode()       {}
func (*HorizontalRule) docNode()  {}
func (*Formula) docNode()         {}
func (*Anchor) docNode()          {}
func (*IncludeBlock) docNode()    {}
func (*IncludeOperator) docNode() {}
func (*StyleChange) docNode()     {}
func (*Verbatim) docNode()        {}
