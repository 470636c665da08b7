package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// HTMLFormatter renders the static right-to-left page with its stylesheet.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string     { return "html" }
func (h HTMLFormatter) FileName() string { return "index.html" }

//go:embed templates/page.html.tmpl
var htmlTemplateSource string

//go:embed templates/styles.css
var stylesheet []byte

var htmlTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Assets returns the stylesheet linked from the page.
func (h HTMLFormatter) Assets() map[string][]byte {
	return map[string][]byte{"styles.css": stylesheet}
}
