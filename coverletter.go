package resumegen

import (
	"fmt"
	"strings"
)

// Literal lines the classifier matches exactly.
const (
	salutationLine = "Dear Hiring Manager,"
	closingLine    = "Sincerely,"
)

// Paragraph spacing in points.
const (
	bodySpacing       = 12
	headerLineSpacing = 6
)

// CoverLetterData is the flat placeholder mapping for the cover-letter
// template. Every field is required; each one substitutes the matching
// $key token in the template.
type CoverLetterData struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Date     string
	Position string
	Company  string
}

// placeholderKeys fixes the substitution order. Substitution is literal
// substring replacement, so a key that prefixes another key is a known
// hazard; the fixed order keeps the behavior reproducible rather than
// hiding it.
var placeholderKeys = []string{"name", "address", "phone", "email", "date", "position", "company"}

// fields returns the placeholder mapping in substitution order.
func (d CoverLetterData) fields() map[string]string {
	return map[string]string{
		"name":     d.Name,
		"address":  d.Address,
		"phone":    d.Phone,
		"email":    d.Email,
		"date":     d.Date,
		"position": d.Position,
		"company":  d.Company,
	}
}

// Validate enumerates every missing field before any rendering begins.
// The returned error names all missing fields, first one first, so a
// caller sees the full damage in one pass instead of fixing fields one
// by one.
func (d CoverLetterData) Validate() error {
	values := d.fields()
	var missing []string
	for _, key := range placeholderKeys {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// substitute replaces every $key occurrence in the template. Tokens with
// no mapping entry are left literal, by contract.
func (d CoverLetterData) substitute(template string) string {
	values := d.fields()
	out := template
	for _, key := range placeholderKeys {
		out = strings.ReplaceAll(out, "$"+key, values[key])
	}
	return out
}

// CoverLetter substitutes the data into the plain-text template, splits
// the result into lines, and classifies each non-blank line into a
// paragraph role to pick its spacing. Validation runs before any node
// is built, so a failure never produces a partial document.
func (r *Renderer) CoverLetter(template string, data CoverLetterData) (*Document, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		Title:  fmt.Sprintf("%s - %s Cover Letter", data.Name, data.Company),
		Author: data.Name,
		Style:  r.style,
	}

	lines := strings.Split(data.substitute(template), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		doc.Nodes = append(doc.Nodes, classifyLine(line, i, lines, data))
	}

	return doc, nil
}

// classifyLine maps one non-blank line to a paragraph node using
// exact-match rules against the literal line content. index is the
// line's position in the original split list, blanks included. The
// signature check is positional: a line equal to the name is the
// signature only when the line physically above it is the closing, so a
// header name line can never be mistaken for the signature.
func classifyLine(line string, index int, lines []string, data CoverLetterData) Node {
	node := Node{
		Kind: NodeParagraph,
		Runs: []Run{textRun(line)},
	}

	switch {
	case line == salutationLine:
		node.Role = RoleSalutation
	case line == closingLine:
		node.Role = RoleClosing
		node.SpacingBefore = bodySpacing
	case line == data.Name && index > 0 && strings.TrimSpace(lines[index-1]) == closingLine:
		node.Role = RoleSignature
	case isHeaderLine(line, data):
		node.Role = RoleHeaderLine
		node.SpacingAfter = headerLineSpacing
	default:
		node.Role = RoleBody
		node.SpacingBefore = bodySpacing
		node.SpacingAfter = bodySpacing
	}
	return node
}

// isHeaderLine reports whether the line is one of the contact-block
// lines emitted at the top of the letter.
func isHeaderLine(line string, data CoverLetterData) bool {
	switch line {
	case data.Name, data.Address, data.Date, fmt.Sprintf("%s | %s", data.Phone, data.Email):
		return true
	}
	return false
}
