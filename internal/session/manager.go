package session

import (
	"sync"
	"time"
)

// ======================================================
// EVENTOS DE SESSÃO
// ======================================================

type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventTokenRefreshed EventType = "token_refreshed"
)

type Event struct {
	Type   EventType
	UserID uint
	Email  string
	At     time.Time
}

type Session struct {
	UserID    uint
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ======================================================
// MANAGER
// ======================================================

// Manager guarda o estado de sessão do processo e notifica assinantes a cada
// mudança (sign-in, sign-out, refresh). É injetado, nunca global.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uint]Session
	subs     map[int]chan Event
	nextSub  int
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uint]Session),
		subs:     make(map[int]chan Event),
	}
}

// Subscribe devolve um canal de eventos e o id para cancelar a assinatura.
func (m *Manager) Subscribe() (int, <-chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++

	ch := make(chan Event, 16)
	m.subs[id] = ch
	return id, ch
}

func (m *Manager) Unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.subs[id]; ok {
		delete(m.subs, id)
		close(ch)
	}
}

func (m *Manager) Current(userID uint) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	return s, ok
}

func (m *Manager) SignIn(s Session) {
	m.mu.Lock()
	m.sessions[s.UserID] = s
	m.mu.Unlock()

	m.publish(Event{Type: EventSignedIn, UserID: s.UserID, Email: s.Email, At: time.Now()})
}

func (m *Manager) SignOut(userID uint) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		m.publish(Event{Type: EventSignedOut, UserID: userID, Email: s.Email, At: time.Now()})
	}
}

func (m *Manager) Refresh(s Session) {
	m.mu.Lock()
	m.sessions[s.UserID] = s
	m.mu.Unlock()

	m.publish(Event{Type: EventTokenRefreshed, UserID: s.UserID, Email: s.Email, At: time.Now()})
}

// publish nunca bloqueia; assinante lento perde eventos.
func (m *Manager) publish(ev Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
