// Package views renders the portal's pages and the fragments swapped into
// them.
package views

import (
	"bytes"
	"careportal-service/internal/app/services/core/appointments"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsGlob = "templates/partials/*.html"
	pagesGlob    = "templates/pages/*.html"
)

// Renderer holds one template set per page, each made of the layout, every
// partial and the page itself, plus a layout-free set for fragments.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
	location  *time.Location
}

func NewRenderer(location *time.Location) (*Renderer, error) {
	if location == nil {
		location = time.UTC
	}
	renderer := &Renderer{
		pages:    make(map[string]*template.Template),
		location: location,
	}

	fragments, err := template.New("fragments").Funcs(renderer.funcs()).ParseFS(templateFS, partialsGlob)
	if err != nil {
		return nil, err
	}
	renderer.fragments = fragments

	pageFiles, err := fs.Glob(templateFS, pagesGlob)
	if err != nil {
		return nil, err
	}
	for _, pageFile := range pageFiles {
		name := strings.TrimSuffix(path.Base(pageFile), ".html")
		page, err := template.New(name).Funcs(renderer.funcs()).ParseFS(templateFS, layoutFile, partialsGlob, pageFile)
		if err != nil {
			return nil, err
		}
		renderer.pages[name] = page
	}
	return renderer, nil
}

// Page renders a full document. Output is buffered so a failing template
// never leaves half a page on the wire.
func (r *Renderer) Page(w io.Writer, name string, data *Page) error {
	page, ok := r.pages[name]
	if !ok {
		return exceptions.ErrTemplateRender(fmt.Errorf("page %q not found", name), name)
	}
	return execute(w, page, "layout", data)
}

func (r *Renderer) Fragment(w io.Writer, name string, data interface{}) error {
	return execute(w, r.fragments, name, data)
}

func execute(w io.Writer, tmpl *template.Template, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return exceptions.ErrTemplateRender(err, name)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"statusBadge":   appointments.StatusBadge,
		"statusActions": appointments.StatusActions,
		"humanize":      humanize,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(r.location).Format(constvars.DateDisplay)
		},
		"dateTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(r.location).Format(constvars.DateTimeDisplay)
		},
		"clock": func(t time.Time) string {
			return t.In(r.location).Format(constvars.TimeLayout)
		},
		"optionalDate": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return t.In(r.location).Format(constvars.DateDisplay)
		},
		"money": func(amount float64) string {
			return fmt.Sprintf("%.2f", amount)
		},
		"fieldError": func(fieldErrors exceptions.FieldErrors, field string) string {
			return fieldErrors[field]
		},
		"resultForm": func(testID string) LabResultFormView {
			return LabResultFormView{TestID: testID, Form: &requests.LabResultForm{}}
		},
		"transferForm": func(itemID string) TransferFormView {
			return TransferFormView{ItemID: itemID, Form: &requests.InventoryTransferForm{}}
		},
		"paymentForm": func(paymentID string) PaymentFormView {
			return PaymentFormView{PaymentID: paymentID, Form: &requests.ProcessPaymentForm{}}
		},
		"medicationRows": func(medications []requests.MedicationForm) []requests.MedicationForm {
			if len(medications) == 0 {
				return []requests.MedicationForm{{}}
			}
			return medications
		},
		"selected": func(current, value string) template.HTMLAttr {
			if current == value {
				return "selected"
			}
			return ""
		},
	}
}

// humanize turns CHECKED_IN or in_progress into "Checked in" / "In progress".
func humanize(value string) string {
	value = strings.ToLower(strings.ReplaceAll(value, "_", " "))
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
