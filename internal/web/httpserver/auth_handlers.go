package httpserver

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/app"
	"finitefield.org/library-web/internal/web/forms"
	custommw "finitefield.org/library-web/internal/web/httpserver/middleware"
	"finitefield.org/library-web/internal/web/metrics"
	"finitefield.org/library-web/internal/web/observability"
	"finitefield.org/library-web/internal/web/pages"
	"finitefield.org/library-web/internal/web/templates"
	"finitefield.org/library-web/internal/web/templates/helpers"
)

const (
	loginPath    = "/login"
	registerPath = "/register"

	// actionKey selects a non-default action on a form post.
	actionKey    = "_action"
	actionLogout = "logout"
	// fieldKey names the field an event applies to when HX-Trigger-Name is absent.
	fieldKey = "_field"
)

type authHandlers struct {
	app *app.Context
}

func newAuthHandlers(application *app.Context) *authHandlers {
	if application == nil {
		panic("httpserver: application context is required")
	}
	return &authHandlers{app: application}
}

func (h *authHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, h.app.NewLoginPage(), http.StatusOK, false)
}

func (h *authHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())
	login := h.app.NewLoginPage()

	if err := r.ParseForm(); err != nil {
		logger.Warn("parse login form", zap.Error(err))
		h.renderLogin(w, r, login, http.StatusBadRequest, false)
		return
	}

	if r.PostFormValue(actionKey) == actionLogout {
		login.SignOut()
		h.app.Metrics.Login(metrics.OutcomeSignOut)
		logger.Info("signed out")
		custommw.Redirect(w, r, loginPath)
		return
	}

	form := login.Form()
	form.Restore(r.PostForm)
	if event := r.PostFormValue(forms.EventKey); event != "" {
		form.Apply(event, triggerName(r))
		h.renderLogin(w, r, login, http.StatusOK, true)
		return
	}

	state := login.Submit()
	outcome := loginOutcome(login, state)
	h.app.Metrics.Login(outcome)
	logger.Info("login submitted", zap.String("outcome", outcome))

	status := http.StatusOK
	switch outcome {
	case metrics.OutcomeInvalid:
		status = http.StatusBadRequest
	case metrics.OutcomeRejected:
		status = http.StatusUnauthorized
	}
	h.renderLogin(w, r, login, status, false)
}

func (h *authHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, h.app.NewRegisterPage(), nil, http.StatusOK, false)
}

func (h *authHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())
	register := h.app.NewRegisterPage()

	if err := r.ParseForm(); err != nil {
		logger.Warn("parse register form", zap.Error(err))
		h.renderRegister(w, r, register, nil, http.StatusBadRequest, false)
		return
	}

	form := register.Form()
	form.Restore(r.PostForm)
	if event := r.PostFormValue(forms.EventKey); event != "" {
		form.Apply(event, triggerName(r))
		h.renderRegister(w, r, register, nil, http.StatusOK, true)
		return
	}

	record, ok := register.Submit()
	if !ok {
		h.app.Metrics.Registration(metrics.OutcomeInvalid)
		h.renderRegister(w, r, register, nil, http.StatusBadRequest, false)
		return
	}
	h.app.Metrics.Registration(metrics.OutcomeAccepted)
	h.renderRegister(w, r, register, &templates.RegistrationView{
		ID:       record.ID,
		Name:     record.Name,
		LastName: record.LastName,
		Email:    record.Email,
	}, http.StatusOK, false)
}

func (h *authHandlers) pageData(r *http.Request, title string) templates.PageData {
	return templates.PageData{
		Title:       title,
		Environment: custommw.EnvironmentFromContext(r.Context()),
		CSRFToken:   custommw.CSRFTokenFromContext(r.Context()),
		Nav:         h.app.Navbar.View(helpers.RequestPath(r.Context())),
	}
}

// renderLogin serves the full page, or only the form for htmx requests. An
// accepted login also swaps the navbar out of band since the auth state
// changed.
func (h *authHandlers) renderLogin(w http.ResponseWriter, r *http.Request, login *pages.Login, status int, echoSecrets bool) {
	data := templates.LoginPageData{
		PageData:    h.pageData(r, "Log in"),
		Form:        login.Form(),
		State:       login.State().String(),
		EchoSecrets: echoSecrets,
	}
	if custommw.IsHTMXRequest(r.Context()) {
		data.NavOOB = login.State() == pages.Accepted
		render(w, r, templates.LoginForm(data), http.StatusOK)
		return
	}
	render(w, r, templates.LoginPage(data), status)
}

func (h *authHandlers) renderRegister(w http.ResponseWriter, r *http.Request, register *pages.Register, record *templates.RegistrationView, status int, echoSecrets bool) {
	data := templates.RegisterPageData{
		PageData:    h.pageData(r, "Register"),
		Form:        register.Form(),
		Submitted:   register.Submitted(),
		Accepted:    register.Accepted(),
		Record:      record,
		EchoSecrets: echoSecrets,
	}
	if custommw.IsHTMXRequest(r.Context()) {
		render(w, r, templates.RegisterForm(data), http.StatusOK)
		return
	}
	render(w, r, templates.RegisterPage(data), status)
}

// render writes the component with the given status. htmx only swaps 2xx
// responses, so fragment callers always pass 200.
func render(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

func loginOutcome(login *pages.Login, state pages.LoginState) string {
	switch {
	case state == pages.Accepted:
		return metrics.OutcomeAccepted
	case login.Form().Invalid():
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeRejected
	}
}

func triggerName(r *http.Request) string {
	if name := custommw.HTMXInfoFromContext(r.Context()).TriggerName; name != "" {
		return name
	}
	return r.PostFormValue(fieldKey)
}
