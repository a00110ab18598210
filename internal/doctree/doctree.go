// Package doctree is the parsed documentation markup model consumed by the
// renderers. Trees are built once by a front end and are read-only afterwards.
package doctree

// Kind identifies the concrete type of a Node.
type Kind int

const (
	KindWord Kind = iota
	KindLinkedWord
	KindWhitespace
	KindSymbol
	KindURL
	KindLineBreak
	KindHorizontalRule
	KindFormula
	KindAnchor
	KindIncludeBlock
	KindIncludeOperator
	KindStyleChange
	KindVerbatim

	KindRoot
	KindParagraph
	KindAutoList
	KindAutoListItem
	KindSimpleList
	KindSimpleListItem
	KindSection
	KindSimpleSection
	KindTitle
	KindHTMLList
	KindHTMLListItem
	KindHTMLPreformatted
	KindHTMLDescList
	KindHTMLDescTitle
	KindHTMLDescData
	KindHTMLTable
	KindHTMLTableRow
	KindHTMLTableCell
	KindHTMLCaption
	KindHTMLHeader
	KindIndexEntry
	KindInternalOnly
	KindHRef
	KindHyperlinkRef
	KindCrossReference
	KindSectionReference
	KindSectionReferenceList
	KindLanguage
	KindParameterSection
	KindParameterList
	KindCrossReferenceItem
	KindInternalReference
	KindImage
	KindExternalGraphFile
	KindCopy
)

var kindNames = [...]string{
	KindWord:                 "Word",
	KindLinkedWord:           "LinkedWord",
	KindWhitespace:           "Whitespace",
	KindSymbol:               "Symbol",
	KindURL:                  "URL",
	KindLineBreak:            "LineBreak",
	KindHorizontalRule:       "HorizontalRule",
	KindFormula:              "Formula",
	KindAnchor:               "Anchor",
	KindIncludeBlock:         "IncludeBlock",
	KindIncludeOperator:      "IncludeOperator",
	KindStyleChange:          "StyleChange",
	KindVerbatim:             "Verbatim",
	KindRoot:                 "Root",
	KindParagraph:            "Paragraph",
	KindAutoList:             "AutoList",
	KindAutoListItem:         "AutoListItem",
	KindSimpleList:           "SimpleList",
	KindSimpleListItem:       "SimpleListItem",
	KindSection:              "Section",
	KindSimpleSection:        "SimpleSection",
	KindTitle:                "Title",
	KindHTMLList:             "HTMLList",
	KindHTMLListItem:         "HTMLListItem",
	KindHTMLPreformatted:     "HTMLPreformatted",
	KindHTMLDescList:         "HTMLDescList",
	KindHTMLDescTitle:        "HTMLDescTitle",
	KindHTMLDescData:         "HTMLDescData",
	KindHTMLTable:            "HTMLTable",
	KindHTMLTableRow:         "HTMLTableRow",
	KindHTMLTableCell:        "HTMLTableCell",
	KindHTMLCaption:          "HTMLCaption",
	KindHTMLHeader:           "HTMLHeader",
	KindIndexEntry:           "IndexEntry",
	KindInternalOnly:         "InternalOnly",
	KindHRef:                 "HRef",
	KindHyperlinkRef:         "HyperlinkRef",
	KindCrossReference:       "CrossReference",
	KindSectionReference:     "SectionReference",
	KindSectionReferenceList: "SectionReferenceList",
	KindLanguage:             "Language",
	KindParameterSection:     "ParameterSection",
	KindParameterList:        "ParameterList",
	KindCrossReferenceItem:   "CrossReferenceItem",
	KindInternalReference:    "InternalReference",
	KindImage:                "Image",
	KindExternalGraphFile:    "ExternalGraphFile",
	KindCopy:                 "Copy",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is one element of a documentation tree. The set of implementations
// is closed: only types in this package satisfy it.
type Node interface {
	Kind() Kind
	docNode()
}

// Compound is a Node that owns an ordered sequence of children.
type Compound interface {
	Node
	Children() []Node
}

// Branch holds the children of a compound node.
type Branch struct {
	Nodes []Node
}

// Children returns the ordered child nodes.
func (b Branch) Children() []Node { return b.Nodes }

// Of builds a Branch from its children.
func Of(children ...Node) Branch { return Branch{Nodes: children} }

// Children returns the children of n, or nil for leaf kinds.
func Children(n Node) []Node {
	if c, ok := n.(Compound); ok {
		return c.Children()
	}
	return nil
}

// Walk calls fn for n and each descendant in document order. Returning
// false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
