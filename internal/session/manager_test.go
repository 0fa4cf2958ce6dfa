package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManagerSessions(t *testing.T) {
	m := NewManager()

	s := Session{UserID: 1, Email: "dona@salao.pt", Role: "owner", ExpiresAt: time.Now().Add(time.Hour)}
	m.SignIn(s)

	got, ok := m.Current(1)
	require.True(t, ok)
	require.Equal(t, "dona@salao.pt", got.Email)

	m.SignOut(1)
	_, ok = m.Current(1)
	require.False(t, ok)
}

func TestManagerEvents(t *testing.T) {
	m := NewManager()
	id, events := m.Subscribe()
	defer m.Unsubscribe(id)

	m.SignIn(Session{UserID: 1, Email: "dona@salao.pt"})
	m.Refresh(Session{UserID: 1, Email: "dona@salao.pt"})
	m.SignOut(1)

	want := []EventType{EventSignedIn, EventTokenRefreshed, EventSignedOut}
	for _, w := range want {
		select {
		case ev := <-events:
			require.Equal(t, w, ev.Type)
			require.Equal(t, uint(1), ev.UserID)
		case <-time.After(time.Second):
			t.Fatalf("evento %s não chegou", w)
		}
	}
}

func TestManagerUnsubscribeClosesChannel(t *testing.T) {
	m := NewManager()
	id, events := m.Subscribe()

	m.Unsubscribe(id)

	_, open := <-events
	require.False(t, open)

	// Publicar depois do cancelamento não pode entrar em pânico.
	m.SignIn(Session{UserID: 2, Email: "outra@salao.pt"})
}

func TestManagerSignOutUnknownUserIsSilent(t *testing.T) {
	m := NewManager()
	id, events := m.Subscribe()
	defer m.Unsubscribe(id)

	m.SignOut(99)

	select {
	case ev := <-events:
		t.Fatalf("evento inesperado: %s", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}
