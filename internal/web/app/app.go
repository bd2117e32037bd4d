// Package app wires the application context: the single auth state store and
// the collaborators every page needs. It is built once at start-up and passed
// explicitly to the HTTP layer.
package app

import (
	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/authstate"
	"finitefield.org/library-web/internal/web/credentials"
	"finitefield.org/library-web/internal/web/metrics"
	"finitefield.org/library-web/internal/web/navbar"
	"finitefield.org/library-web/internal/web/pages"
)

// Context carries the process-wide state and shared services.
type Context struct {
	Auth        *authstate.Store
	Navbar      *navbar.Navbar
	Credentials credentials.Credential
	Logger      *zap.Logger
	Metrics     *metrics.Recorder
}

// Options customise New.
type Options struct {
	Credentials credentials.Credential
	Logger      *zap.Logger
	Metrics     *metrics.Recorder
}

// New creates the auth state store with its defaults and the navbar following it.
func New(opts Options) *Context {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	creds := opts.Credentials
	if creds.Email == "" || creds.Password == "" {
		creds = credentials.Reference
	}
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.New()
	}

	store := authstate.New()
	return &Context{
		Auth:        store,
		Navbar:      navbar.New(store),
		Credentials: creds,
		Logger:      logger,
		Metrics:     rec,
	}
}

// NewLoginPage instantiates a login controller with a fresh form.
func (c *Context) NewLoginPage() *pages.Login {
	return pages.NewLogin(c.Auth, c.Credentials, nil)
}

// NewRegisterPage instantiates a registration controller with a fresh form.
func (c *Context) NewRegisterPage() *pages.Register {
	return pages.NewRegister(nil, c.Logger)
}

// Close releases subscriptions held by the context.
func (c *Context) Close() {
	if c.Navbar != nil {
		c.Navbar.Close()
	}
}
