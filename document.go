package resumegen

// Heading levels mirror the nesting of the source data: the document
// title is level 0, the subtitle level 3, sections level 1, and entries
// level 2. Levels intentionally do not increase monotonically; they are
// semantic labels, not an outline depth.
const (
	HeadingTitle    = 0
	HeadingSection  = 1
	HeadingEntry    = 2
	HeadingSubtitle = 3
)

// ParagraphRole classifies a paragraph for spacing decisions.
type ParagraphRole int

// Paragraph roles.
const (
	RoleBody ParagraphRole = iota
	RoleBullet
	RoleSalutation
	RoleClosing
	RoleSignature
	RoleHeaderLine
)

// String returns the role name for logs and test failures.
func (r ParagraphRole) String() string {
	switch r {
	case RoleBody:
		return "body"
	case RoleBullet:
		return "bullet"
	case RoleSalutation:
		return "salutation"
	case RoleClosing:
		return "closing"
	case RoleSignature:
		return "signature"
	case RoleHeaderLine:
		return "headerLine"
	default:
		return "unknown"
	}
}

// RunKind discriminates plain text runs from hyperlink runs.
type RunKind int

// Run kinds.
const (
	RunText RunKind = iota
	RunHyperlink
)

// Run is a contiguous span of paragraph text sharing one formatting
// treatment. Hyperlink runs carry the target URL and are rendered
// underlined in the hyperlink color.
type Run struct {
	Kind RunKind
	Text string
	URL  string // set only for RunHyperlink
}

// textRun returns a plain text run.
func textRun(text string) Run {
	return Run{Kind: RunText, Text: text}
}

// linkRun returns a hyperlink run with the given label and target.
func linkRun(label, url string) Run {
	return Run{Kind: RunHyperlink, Text: label, URL: url}
}

// NodeKind discriminates headings from paragraphs.
type NodeKind int

// Node kinds.
const (
	NodeHeading NodeKind = iota
	NodeParagraph
)

// Node is one styled block in the output document. Heading nodes use
// Level and Text; paragraph nodes use Role, Runs, Bullet, and the
// spacing fields (points).
type Node struct {
	Kind NodeKind

	// Heading fields.
	Level int
	Text  string

	// Paragraph fields.
	Role          ParagraphRole
	Runs          []Run
	Bullet        bool
	SpacingBefore float64
	SpacingAfter  float64
}

// heading returns a heading node.
func heading(level int, text string) Node {
	return Node{Kind: NodeHeading, Level: level, Text: text}
}

// Document is the fully built node sequence plus the style it was
// rendered with. It is a read-only snapshot: built once, then
// serialized, never mutated.
type Document struct {
	Title  string // PDF metadata title
	Author string // PDF metadata author
	Style  StyleConfig
	Nodes  []Node
}
