// Package navbar derives the navigation bar display values from the auth
// state store. It has no state of its own beyond the last projection.
package navbar

import (
	"strings"
	"sync"

	"finitefield.org/library-web/internal/web/authstate"
)

// Link is a navigation entry.
type Link struct {
	Href   string
	Label  string
	Active bool
}

// View is the template data for the navigation bar.
type View struct {
	Role       string
	Email      string
	IsLoggedIn bool
	Links      []Link
}

var links = []Link{
	{Href: "/login", Label: "Log in"},
	{Href: "/register", Label: "Register"},
}

// Navbar keeps a read-through projection of the store, refreshed by store
// notifications.
type Navbar struct {
	mu          sync.RWMutex
	role        string
	email       string
	loggedIn    bool
	unsubscribe func()
}

// New subscribes to store and seeds the projection with its current state.
func New(store *authstate.Store) *Navbar {
	n := &Navbar{}
	n.project(store.Snapshot())
	n.unsubscribe = store.Subscribe(n.project)
	return n
}

func (n *Navbar) project(st authstate.State) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.role = st.Role
	n.email = st.Username
	n.loggedIn = st.IsLoggedIn
}

// Role returns the projected role.
func (n *Navbar) Role() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.role
}

// Email returns the projected username.
func (n *Navbar) Email() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.email
}

// View builds template data with the link matching requestPath marked active.
func (n *Navbar) View(requestPath string) View {
	n.mu.RLock()
	view := View{Role: n.role, Email: n.email, IsLoggedIn: n.loggedIn}
	n.mu.RUnlock()

	current := normalizePath(requestPath)
	view.Links = make([]Link, 0, len(links))
	for _, link := range links {
		link.Active = current == link.Href
		view.Links = append(view.Links, link)
	}
	return view
}

// Close stops following the store.
func (n *Navbar) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}
