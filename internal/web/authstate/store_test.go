package authstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	t.Parallel()

	store := New()
	require.Empty(t, store.Username())
	require.Empty(t, store.Role())
	require.False(t, store.IsLoggedIn())
	require.Equal(t, State{}, store.Snapshot())
}

func TestSettersOverwriteWithoutValidation(t *testing.T) {
	t.Parallel()

	store := New()
	store.SetUsername("user@example.com")
	store.SetRole("user")
	require.Equal(t, "user@example.com", store.Username())
	require.Equal(t, "user", store.Role())

	// isLoggedIn is independent of username.
	store.SetUsername("")
	store.SetIsLoggedIn(true)
	require.True(t, store.IsLoggedIn())
	require.Empty(t, store.Username())

	store.Reset()
	require.Equal(t, State{}, store.Snapshot())
}

func TestListenersObserveMutationBeforeSetterReturns(t *testing.T) {
	t.Parallel()

	store := New()
	var seen []State
	unsubscribe := store.Subscribe(func(st State) {
		seen = append(seen, st)
	})

	store.SetRole("user")
	require.Len(t, seen, 1, "listener must run synchronously")
	require.Equal(t, "user", seen[0].Role)

	store.SetUsername("a@b.com")
	require.Len(t, seen, 2)
	require.Equal(t, State{Username: "a@b.com", Role: "user"}, seen[1])

	unsubscribe()
	unsubscribe()
	store.SetRole("admin")
	require.Len(t, seen, 2, "unsubscribed listener must not be called")
}

func TestSettingSameValueIsIdempotent(t *testing.T) {
	t.Parallel()

	store := New()
	calls := 0
	store.Subscribe(func(State) { calls++ })

	store.SetUsername("x")
	store.SetUsername("x")
	require.Equal(t, "x", store.Username())
	require.Equal(t, 1, calls)

	store.SetIsLoggedIn(false)
	require.Equal(t, 1, calls)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	store := New()
	var order []string
	store.Subscribe(func(State) { order = append(order, "first") })
	store.Subscribe(func(State) { order = append(order, "second") })

	store.SetRole("user")
	require.Equal(t, []string{"first", "second"}, order)
}

func TestConcurrentWritersAndReaders(t *testing.T) {
	t.Parallel()

	store := New()
	var mu sync.Mutex
	last := State{}
	store.Subscribe(func(st State) {
		mu.Lock()
		last = st
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.SetRole("user")
			store.SetUsername("user@example.com")
		}()
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
			_ = store.IsLoggedIn()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, store.Snapshot(), last, "last notification must match final state")
}
