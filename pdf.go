package resumegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Points per centimeter; gofpdf margins are set in the document unit
// (points here) while StyleConfig carries centimeters.
const ptPerCm = 72.0 / 2.54

// lineHeightFactor converts a font size to a line height.
const lineHeightFactor = 1.4

// bulletIndent is the left indent for bullet paragraphs, in points.
const bulletIndent = 14.0

// headingScale maps a heading level to a font-size multiplier over the
// body size. Levels are semantic (0 title, 1 section, 2 entry,
// 3 subtitle), so the ladder is decreasing in visual prominence, not in
// level number.
var headingScale = map[int]float64{
	HeadingTitle:    2.25,
	HeadingSection:  1.5,
	HeadingEntry:    1.25,
	HeadingSubtitle: 1.125,
}

// Hyperlink color, the standard Office hyperlink blue.
var linkColor = struct{ r, g, b int }{5, 99, 193}

// WritePDF serializes the document node sequence to PDF. The document
// model is complete before the first byte is written, so a failed
// render can never leave partial output behind.
func (d *Document) WritePDF(w io.Writer) error {
	if len(d.Nodes) == 0 {
		return ErrEmptyDocument
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(d.Style.Margins.Left*ptPerCm, d.Style.Margins.Top*ptPerCm, d.Style.Margins.Right*ptPerCm)
	pdf.SetAutoPageBreak(true, d.Style.Margins.Bottom*ptPerCm)
	if d.Title != "" {
		pdf.SetTitle(d.Title, true)
	}
	if d.Author != "" {
		pdf.SetAuthor(d.Author, true)
	}

	family := coreFontFamily(d.Style.FontName)
	size := d.Style.FontSizePt

	pdf.AddPage()
	pdf.SetFont(family, "", size)

	for _, node := range d.Nodes {
		switch node.Kind {
		case NodeHeading:
			writeHeading(pdf, node, family, size)
		case NodeParagraph:
			writeParagraph(pdf, node, family, size)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// coreFontFamily maps common font names onto the PDF core fonts so
// familiar names like Arial resolve without font files.
func coreFontFamily(name string) string {
	switch strings.ToLower(name) {
	case "arial", "helvetica", "":
		return "Helvetica"
	case "times", "times new roman":
		return "Times"
	case "courier", "courier new":
		return "Courier"
	default:
		return name
	}
}

// writeHeading renders a heading as a bold line sized by the level
// ladder, with proportional spacing above and below.
func writeHeading(pdf *gofpdf.Fpdf, node Node, family string, baseSize float64) {
	scale, ok := headingScale[node.Level]
	if !ok {
		scale = 1.0
	}
	size := baseSize * scale

	pdf.SetFont(family, "B", size)
	pdf.Ln(size * 0.4)

	pdf.MultiCell(contentWidth(pdf), size*lineHeightFactor, node.Text, "", "L", false)
	pdf.Ln(size * 0.2)

	pdf.SetFont(family, "", baseSize)
}

// writeParagraph renders a paragraph's runs in flow, with the node's
// spacing and optional bullet marker. Hyperlink runs are underlined and
// drawn in the hyperlink color.
func writeParagraph(pdf *gofpdf.Fpdf, node Node, family string, baseSize float64) {
	lineHt := baseSize * lineHeightFactor

	if node.SpacingBefore > 0 {
		pdf.Ln(node.SpacingBefore)
	}

	if node.Bullet {
		left, _, _, _ := pdf.GetMargins()
		pdf.SetX(left + bulletIndent)
		pdf.Write(lineHt, "• ")
	}

	for _, run := range node.Runs {
		switch run.Kind {
		case RunHyperlink:
			pdf.SetTextColor(linkColor.r, linkColor.g, linkColor.b)
			pdf.SetFont(family, "U", baseSize)
			pdf.WriteLinkString(lineHt, run.Text, run.URL)
			pdf.SetFont(family, "", baseSize)
			pdf.SetTextColor(0, 0, 0)
		default:
			pdf.Write(lineHt, run.Text)
		}
	}

	pdf.Ln(lineHt)
	if node.SpacingAfter > 0 {
		pdf.Ln(node.SpacingAfter)
	}
}

// contentWidth returns the writable width between the margins.
func contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return pageW - left - right
}
