// Package mail renders and delivers transactional and promotional email.
package mail

import (
	"bytes"
	"embed"
	"html/template"

	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer holds one parsed template set per email template.
type renderer struct {
	sets map[service.EmailTemplate]*template.Template
}

var allTemplates = []service.EmailTemplate{
	service.EmailWelcome,
	service.EmailOTP,
	service.EmailPasswordChanged,
	service.EmailAddressChanged,
	service.EmailPromotion,
	service.EmailOrderConfirmation,
}

func newRenderer() (*renderer, error) {
	r := &renderer{sets: make(map[service.EmailTemplate]*template.Template, len(allTemplates))}

	for _, name := range allTemplates {
		set, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+string(name)+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s template", name)
		}
		r.sets[name] = set
	}

	return r, nil
}

func (r *renderer) render(name service.EmailTemplate, data map[string]any) (string, error) {
	set, ok := r.sets[name]
	if !ok {
		return "", errors.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return buf.String(), nil
}
