package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// ErrUnknownTemplate is the sentinel returned when the template
// identifier is not in the fixed registry. Callers convert it into a
// 400 response.
var ErrUnknownTemplate = errors.New("unknown email template")

// shell is the shared HTML frame every email body is rendered into.
// Inline styles only; email clients strip almost everything else.
const shell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f6f3;font-family:Helvetica,Arial,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">
<tr><td align="center" style="padding:32px 16px;">
<table role="presentation" width="520" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
<tr><td>
<p style="margin:0 0 24px 0;font-size:14px;font-weight:bold;color:#1a7a3c;">LeagueLink</p>
<h1 style="margin:0 0 16px 0;font-size:22px;color:#1f2a24;">{{template "heading" .}}</h1>
<div style="font-size:15px;line-height:1.6;color:#3c4640;">{{template "body" .}}</div>
<p style="margin:32px 0 0 0;font-size:12px;color:#8a948d;">LeagueLink &middot; weekend golf, properly organized</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

// funcs holds the template helpers. button renders the call-to-action
// anchor with both arguments escaped.
var funcs = template.FuncMap{
	"button": func(url, label string) template.HTML {
		return template.HTML(fmt.Sprintf(
			`<p style="margin:24px 0;"><a href="%s" style="display:inline-block;background-color:#1a7a3c;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:6px;font-size:15px;">%s</a></p>`,
			template.HTMLEscapeString(url),
			template.HTMLEscapeString(label),
		))
	},
}

// compiled holds the pre-parsed template set per identifier, built once
// at package initialization so Render stays a pure lookup + execute.
var compiled = compileAll()

func compileAll() map[Template]*template.Template {
	out := make(map[Template]*template.Template, len(definitions))
	for name, def := range definitions {
		t := template.Must(template.New("shell").Funcs(funcs).Parse(shell))
		template.Must(t.New("heading").Parse(def.heading))
		template.Must(t.New("body").Parse(def.body))
		out[name] = t
	}
	return out
}

// Render maps a template identifier and a context mapping to a subject
// line and an HTML body. It is a pure function: the same identifier and
// context always yield byte-identical output, and context values are
// HTML-escaped on interpolation.
//
// An unrecognized identifier returns ErrUnknownTemplate.
func Render(tmpl Template, data map[string]string) (subject, html string, err error) {
	def, ok := definitions[tmpl]
	if !ok {
		return "", "", ErrUnknownTemplate
	}

	if data == nil {
		data = map[string]string{}
	}

	var body bytes.Buffer
	if err := compiled[tmpl].Execute(&body, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to execute email template %s", tmpl)
	}

	return def.subject, body.String(), nil
}
