package doctree

// Root is the top of a parsed document.
type Root struct {
	Branch
	Title string // Document title (from metadata or filename)
}

// Paragraph is a block of inline content.
type Paragraph struct{ Branch }

// AutoList is a list detected from "-" or "-#" markers.
type AutoList struct {
	Branch
	Ordered bool
}

type AutoListItem struct{ Branch }

// SimpleList is an unordered list without markup of its own.
type SimpleList struct{ Branch }

type SimpleListItem struct{ Branch }

// Section is a titled subdivision of a page.
type Section struct {
	Branch
	Level  int
	Title  string
	File   string
	Anchor string
}

// SimpleSectionKind selects the label of a SimpleSection.
type SimpleSectionKind int

const (
	SectUnknown SimpleSectionKind = iota
	SectSee
	SectReturn
	SectAuthor
	SectAuthors
	SectVersion
	SectSince
	SectDate
	SectNote
	SectWarning
	SectPre
	SectPost
	SectInvariant
	SectRemark
	SectAttention
	SectUser
)

// SimpleSection is a labeled paragraph group such as "Returns" or "Note".
// User sections carry their label in a leading Title child.
type SimpleSection struct {
	Branch
	Type SimpleSectionKind
}

// Title is the user supplied label of a SimpleSection.
type Title struct{ Branch }

type HTMLList struct {
	Branch
	Ordered bool
}

type HTMLListItem struct{ Branch }

// HTMLPreformatted keeps whitespace of its children verbatim.
type HTMLPreformatted struct{ Branch }

type HTMLDescList struct{ Branch }

type HTMLDescTitle struct{ Branch }

type HTMLDescData struct{ Branch }

// HTMLTable is a table with Columns cells per row. When HasCaption is set
// one of its children is an HTMLCaption.
type HTMLTable struct {
	Branch
	Columns    int
	HasCaption bool
}

type HTMLTableRow struct{ Branch }

type HTMLTableCell struct {
	Branch
	IsLast bool
}

type HTMLCaption struct{ Branch }

// HTMLHeader is an <h1>..<h6> heading written inline in a comment.
type HTMLHeader struct {
	Branch
	Level int
}

// IndexEntry is traversed but never shown.
type IndexEntry struct{ Branch }

// InternalOnly holds documentation meant for internal readers.
type InternalOnly struct{ Branch }

// HRef is an HTML anchor with explicit link text.
type HRef struct {
	Branch
	URL string
}

// HyperlinkRef is an explicit link to a documented entity.
type HyperlinkRef struct {
	Branch
	Ref     string
	File    string
	Anchor  string
	HasText bool
}

// CrossReference is a reference whose text defaults to the target title.
type CrossReference struct {
	Branch
	Ref         string
	File        string
	Anchor      string
	TargetTitle string
}

// SectionReference is one entry of a SectionReferenceList.
type SectionReference struct {
	Branch
	File   string
	Anchor string
}

type SectionReferenceList struct{ Branch }

// Language restricts its children to one output language. The renderer
// shows them unconditionally.
type Language struct {
	Branch
	ID string
}

// ParamSectionKind selects the label of a ParameterSection.
type ParamSectionKind int

const (
	ParamUnknown ParamSectionKind = iota
	Param
	RetVal
	Exception
)

type ParameterSection struct {
	Branch
	Type ParamSectionKind
}

// ParameterList documents one or more parameters sharing a description.
type ParameterList struct {
	Branch
	Names []string
}

// CrossReferenceItem is an entry of a generated list such as todo or bug.
type CrossReferenceItem struct {
	Branch
	Title  string
	File   string
	Anchor string
}

// InternalReference links to an anchor in the same document set.
type InternalReference struct {
	Branch
	File   string
	Anchor string
}

// ImageFormat is the backend an Image was declared for.
type ImageFormat int

const (
	ImageHTML ImageFormat = iota
	ImageLatex
	ImageRTF
)

// Image children, when present, are its caption.
type Image struct {
	Branch
	Format     ImageFormat
	Name       string
	Width      string
	Height     string
	HasCaption bool
}

// ExternalGraphFile is a graph description rendered by an external tool.
type ExternalGraphFile struct {
	Branch
	Path       string
	Width      string
	Height     string
	HasCaption bool
}

// Copy shows the documentation of another entity. It does not own the
// copied tree: Nodes references nodes owned elsewhere.
type Copy struct {
	Branch
	Link string
}

func (*Root) Kind() Kind                 { return KindRoot }
func (*Paragraph) Kind() Kind            { return KindParagraph }
func (*AutoList) Kind() Kind             { return KindAutoList }
func (*AutoListItem) Kind() Kind         { return KindAutoListItem }
func (*SimpleList) Kind() Kind           { return KindSimpleList }
func (*SimpleListItem) Kind() Kind       { return KindSimpleListItem }
func (*Section) Kind() Kind              { return KindSection }
func (*SimpleSection) Kind() Kind        { return KindSimpleSection }
func (*Title) Kind() Kind                { return KindTitle }
func (*HTMLList) Kind() Kind             { return KindHTMLList }
func (*HTMLListItem) Kind() Kind         { return KindHTMLListItem }
func (*HTMLPreformatted) Kind() Kind     { return KindHTMLPreformatted }
func (*HTMLDescList) Kind() Kind         { return KindHTMLDescList }
func (*HTMLDescTitle) Kind() Kind        { return KindHTMLDescTitle }
func (*HTMLDescData) Kind() Kind         { return KindHTMLDescData }
func (*HTMLTable) Kind() Kind            { return KindHTMLTable }
func (*HTMLTableRow) Kind() Kind         { return KindHTMLTableRow }
func (*HTMLTableCell) Kind() Kind        { return KindHTMLTableCell }
func (*HTMLCaption) Kind() Kind          { return KindHTMLCaption }
func (*HTMLHeader) Kind() Kind           { return KindHTMLHeader }
func (*IndexEntry) Kind() Kind           { return KindIndexEntry }
func (*InternalOnly) Kind() Kind         { return KindInternalOnly }
func (*HRef) Kind() Kind                 { return KindHRef }
func (*HyperlinkRef) Kind() Kind         { return KindHyperlinkRef }
func (*CrossReference) Kind() Kind       { return KindCrossReference }
func (*SectionReference) Kind() Kind     { return KindSectionReference }
func (*SectionReferenceList) Kind() Kind { return KindSectionReferenceList }
func (*Language) Kind() Kind             { return KindLanguage }
func (*ParameterSection) Kind() Kind     { return KindParameterSection }
func (*ParameterList) Kind() Kind        { return KindParameterList }
func (*CrossReferenceItem) Kind() Kind   { return KindCrossReferenceItem }
func (*InternalReference) Kind() Kind    { return KindInternalReference }
func (*Image) Kind() Kind                { return KindImage }
func (*ExternalGraphFile) Kind() Kind    { return KindExternalGraphFile }
func (*Copy) Kind() Kind                 { return KindCopy }

func (*Root) docNode()                 {}
func (*Paragraph) docNode()            {}
func (*AutoList) docNode()             {}
func (*AutoListItem) docNode()         {}
func (*SimpleList) docNode()           {}
func (*SimpleListItem) docNode()       {}
func (*Section) docNode()              {}
func (*SimpleSection) docNode()        {}
func (*Title) docNode()                {}
func (*HTMLList) docNode()             {}
func (*HTMLListItem) docNode()         {}
func (*HTMLPreformatted) docNode()     {}
func (*HTMLDescList) docNode()         {}
func (*HTMLDescTitle) docNode()        {}
func (*HTMLDescData) docNode()         {}
func (*HTMLTable) docNode()            {}
func (*HTMLTableRow) docNode()         {}
func (*HTMLTableCell) docNode()        {}
func (*HTMLCaption) docNode()          {}
func (*HTMLHeader) docNode()           {}
func (*IndexEntry) docNode()           {}
func (*InternalOnly) docNode()         {}
func (*HRef) docNode()                 {}
func (*HyperlinkRef) docNode()         {}
func (*CrossReference) docNode()       {}
func (*SectionReference) docNode()     {}
func (*SectionReferenceList) docNode() {}
func (*Language) docNode()             {}
func (*ParameterSection) docNode()     {}
func (*ParameterList) docNode()        {}
func (*CrossReferenceItem) docNode()   {}
func (*InternalReference) docNode()    {}
func (*Image) docNode()                {}
func (*ExternalGraphFile) docNode()    {}
func (*Copy) docNode()                 {}
