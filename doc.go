// Package resumegen builds formatted PDF documents (resumes and cover
// letters) from structured JSON data and plain-text templates.
//
// # Quick Start
//
// Create a renderer, render your data, and write the result:
//
//	r, err := resumegen.NewRenderer(resumegen.WithStyle(resumegen.DefaultResumeStyle()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := r.Resume(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var buf bytes.Buffer
//	if err := doc.WritePDF(&buf); err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", buf.Bytes(), 0644)
//
// # Rendering Pipeline
//
// Both document kinds share the same shape:
//
//  1. Validate the input payload (fail fast, no partial documents)
//  2. Walk the data top-down, emitting an ordered sequence of document
//     nodes (headings, paragraphs, bullet items)
//  3. Serialize the node sequence to PDF via gofpdf
//
// The resume walker sorts sections and entries by descending id (stable),
// encodes nesting in heading levels, and rewrites inline HTML-style
// anchors (<a href="...">label</a>) into hyperlink runs. The cover-letter
// renderer substitutes $key placeholders in a plain-text template and
// classifies each line into a paragraph role to pick spacing.
//
// # Styling
//
// A StyleConfig (font name, size in points, page margins in centimeters)
// is applied once at document creation and never mutated afterwards:
//
//	r, err := resumegen.NewRenderer(resumegen.WithStyle(resumegen.StyleConfig{
//	    FontName:   "Helvetica",
//	    FontSizePt: 10,
//	    Margins:    resumegen.Margins{Top: 1, Bottom: 1, Left: 1.5, Right: 1.5},
//	}))
//
// DefaultResumeStyle and DefaultCoverLetterStyle return the stock styles.
package resumegen
