// Package templates renders the pages from embedded html/template files and
// exposes them as templ components so handlers serve them through
// templ.Handler.
package templates

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/a-h/templ"

	"finitefield.org/library-web/internal/web/forms"
	"finitefield.org/library-web/internal/web/templates/helpers"
)

//go:embed html/*.html
var files embed.FS

var sets = mustParse()

func funcs() template.FuncMap {
	return template.FuncMap{
		"navClass":   helpers.NavClass,
		"envClass":   helpers.EnvironmentClass,
		"fieldClass": helpers.FieldClass,
		"inputID":    helpers.InputID,
		"formID":     helpers.FormID,
		"field":      newFieldData,
	}
}

// mustParse builds one template set per page. Every set shares the layout,
// navbar and field partials and defines its own "content".
func mustParse() map[string]*template.Template {
	base := template.Must(template.New("base").Funcs(funcs()).ParseFS(files,
		"html/layout.html", "html/navbar.html", "html/fields.html"))

	out := make(map[string]*template.Template, 2)
	for _, page := range []string{"login", "register"} {
		set := template.Must(base.Clone())
		out[page] = template.Must(set.ParseFS(files, "html/"+page+".html"))
	}
	return out
}

func component(page, name string, data any) templ.Component {
	return templ.FromGoHTML(sets[page].Lookup(name), data)
}

// LoginPage renders the full login page.
func LoginPage(data LoginPageData) templ.Component {
	return component("login", "layout", data)
}

// LoginForm renders only the login form, for htmx swaps.
func LoginForm(data LoginPageData) templ.Component {
	return component("login", "login_form", data)
}

// RegisterPage renders the full registration page.
func RegisterPage(data RegisterPageData) templ.Component {
	return component("register", "layout", data)
}

// RegisterForm renders only the registration form, for htmx swaps.
func RegisterForm(data RegisterPageData) templ.Component {
	return component("register", "register_form", data)
}

// Navbar renders the navigation bar on its own.
func Navbar(data PageData) templ.Component {
	return component("login", "navbar", data)
}

func newFieldData(form *forms.Form, name, action string, echoSecrets bool) (FieldData, error) {
	field := form.Field(name)
	if field == nil {
		return FieldData{}, fmt.Errorf("templates: form %q has no field %q", form.Name(), name)
	}
	return FieldData{
		FormName:    form.Name(),
		Action:      action,
		Field:       field,
		EchoSecrets: echoSecrets,
	}, nil
}
