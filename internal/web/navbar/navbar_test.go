package navbar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/library-web/internal/web/authstate"
)

func TestNavbarFollowsStore(t *testing.T) {
	t.Parallel()

	store := authstate.New()
	nav := New(store)
	t.Cleanup(nav.Close)

	require.Empty(t, nav.Role())
	require.Empty(t, nav.Email())

	store.SetRole("user")
	store.SetUsername("a@b.com")

	require.Equal(t, "user", nav.Role())
	require.Equal(t, "a@b.com", nav.Email())
}

func TestNavbarSeedsFromExistingState(t *testing.T) {
	t.Parallel()

	store := authstate.New()
	store.SetUsername("user@example.com")
	store.SetIsLoggedIn(true)

	nav := New(store)
	t.Cleanup(nav.Close)

	view := nav.View("/login")
	require.Equal(t, "user@example.com", view.Email)
	require.True(t, view.IsLoggedIn)
}

func TestNavbarCloseStopsFollowing(t *testing.T) {
	t.Parallel()

	store := authstate.New()
	nav := New(store)
	nav.Close()

	store.SetRole("user")
	require.Empty(t, nav.Role())
}

func TestViewMarksActiveLink(t *testing.T) {
	t.Parallel()

	nav := New(authstate.New())
	t.Cleanup(nav.Close)

	view := nav.View("/register/")
	require.Len(t, view.Links, 2)
	require.False(t, view.Links[0].Active)
	require.True(t, view.Links[1].Active)
	require.Equal(t, "/register", view.Links[1].Href)

	for _, link := range nav.View("").Links {
		require.False(t, link.Active)
	}
}
