package models

// SOPCategoryAll is the sentinel that bypasses the category filter.
const SOPCategoryAll = "all"

// SOPCategories is the closed set of document categories, sentinel first.
var SOPCategories = []string{
	SOPCategoryAll,
	"Safety & Emergency Response",
	"Structural Works",
	"Landscape & Planting",
	"MEP & Equipment",
	"Temporary Works & Misc",
	"Quality Management & Inspection",
}

// SOPFile describes a single attached document.
type SOPFile struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
}

// SOP is a standard operating procedure record.
type SOP struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Version  string   `json:"version"`
	Date     string   `json:"date"`
	Content  string   `json:"content,omitempty"`
	File     *SOPFile `json:"file,omitempty"`
}

// SOPPatch carries a partial SOP update. Nil fields are left untouched.
type SOPPatch struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Version  *string  `json:"version,omitempty"`
	Date     *string  `json:"date,omitempty"`
	Content  *string  `json:"content,omitempty"`
	File     *SOPFile `json:"file,omitempty"`
}
