package resumegen

import (
	"fmt"
	"sort"
)

// ResumeHeader carries the document title lines. Both fields are
// required; a missing one aborts the whole render.
type ResumeHeader struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Entry is one dated position within a section. Position and Items may
// embed inline anchor markup. Date may be empty.
type Entry struct {
	ID       int      `json:"id"`
	Position string   `json:"position"`
	Date     string   `json:"date"`
	Items    []string `json:"items"`
}

// Section is one titled group of entries.
type Section struct {
	ID      int     `json:"id"`
	Title   string  `json:"title"`
	Content []Entry `json:"content"`
}

// ResumeData is the parsed resume payload. It is treated as a read-only
// snapshot: rendering never mutates it, and section/entry order in the
// output is decided by id, not input order.
type ResumeData struct {
	Header   ResumeHeader `json:"header"`
	Contents []Section    `json:"contents"`
}

// Validate fails fast on the first missing header field. The resume
// path deliberately reports one field at a time, unlike the cover
// letter which enumerates every missing field up front.
func (d ResumeData) Validate() error {
	if d.Header.Name == "" {
		return fmt.Errorf("%w: header.name", ErrMissingField)
	}
	if d.Header.Title == "" {
		return fmt.Errorf("%w: header.title", ErrMissingField)
	}
	return nil
}

// Resume walks the resume payload top-down and returns the document
// node sequence. Heading levels encode nesting: 0 = name, 3 = title,
// 1 = section, 2 = entry. Sections and entries are rendered in
// descending id order; ties keep their relative input order. Bullet
// items keep their given order and never precede their entry heading.
//
// The render is all-or-nothing: a validation failure returns before any
// node is built, so no partial document can ever reach a serializer.
func (r *Renderer) Resume(data ResumeData) (*Document, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		Title:  data.Header.Name,
		Author: data.Header.Name,
		Style:  r.style,
	}
	doc.Nodes = append(doc.Nodes,
		heading(HeadingTitle, data.Header.Name),
		heading(HeadingSubtitle, data.Header.Title),
	)

	for _, section := range sortByIDDesc(data.Contents, func(s Section) int { return s.ID }) {
		doc.Nodes = append(doc.Nodes, heading(HeadingSection, section.Title))

		for _, entry := range sortByIDDesc(section.Content, func(e Entry) int { return e.ID }) {
			if entry.Position != "" {
				title := StripAnchors(entry.Position)
				if entry.Date != "" {
					title = fmt.Sprintf("%s - (%s)", title, entry.Date)
				}
				doc.Nodes = append(doc.Nodes, heading(HeadingEntry, title))
			}

			for _, item := range entry.Items {
				doc.Nodes = append(doc.Nodes, Node{
					Kind:   NodeParagraph,
					Role:   RoleBullet,
					Bullet: true,
					Runs:   ToRuns(item),
				})
			}
		}
	}

	return doc, nil
}

// sortByIDDesc returns a copy of items ordered by descending id. The
// sort is stable so equal ids preserve their input order. Copying keeps
// the caller's payload untouched.
func sortByIDDesc[T any](items []T, id func(T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return id(sorted[i]) > id(sorted[j])
	})
	return sorted
}
