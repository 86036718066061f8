package view

import "github.com/gosnews/gosnews/internal/errs"

// Option is one choice of a select or filter.
type Option struct {
	Value string
	Label string
}

// Filter is a select shown above an admin list.
type Filter struct {
	Name     string
	Label    string
	Options  []Option
	Selected string
}

type Row struct {
	ID        int64
	Cells     []string
	EditURL   string
	DeleteURL string
}

// Table is the data of the generic admin list screen.
type Table struct {
	Title      string
	NewURL     string
	Searchable bool
	Search     string
	Filters    []Filter
	Columns    []string
	Rows       []Row
	Pagination *Pagination
}

// Field types understood by the admin form template.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldURL      = "url"
	FieldEmail    = "email"
	FieldCheckbox = "checkbox"
	FieldSelect   = "select"

	// FieldImage is a text input holding the image URL, paired with a
	// file input named <Name>_file that replaces it when used.
	FieldImage = "image"
)

type Field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	Required bool
	Options  []Option
	Error    string
}

// TranslationGroup is the block of fields for one language.
type TranslationGroup struct {
	Lang   string
	Name   string
	Fields []Field
}

// Form is the data of the generic admin edit screen.
type Form struct {
	Title        string
	Action       string
	CancelURL    string
	Fields       []Field
	Translations []TranslationGroup
	Message      string
	Errors       []errs.FieldError
}

// SetErrors attaches field errors to the matching fields and keeps the
// full list for the summary at the top of the form.
func (f *Form) SetErrors(message string, fieldErrors []errs.FieldError) {
	f.Message = message
	f.Errors = fieldErrors

	byName := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		byName[fe.Field] = fe.Error
	}
	for i := range f.Fields {
		if msg, ok := byName[f.Fields[i].Name]; ok {
			f.Fields[i].Error = msg
		}
	}
}
