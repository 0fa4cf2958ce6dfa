package chat

import (
	"context"
	"sync"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

// Inbox unificado (mock): contatos fixos e histórico de mensagens em memória
// ou em Redis. Nenhum canal real de mensageria é conectado.

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"` // "client" | "me"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

type Contact struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Initials        string `json:"initials"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int    `json:"unread_count"`
	Platform        string `json:"platform"` // "whatsapp" | "instagram"
}

type Store interface {
	Contacts(ctx context.Context) ([]Contact, error)
	Conversation(ctx context.Context, contactID uint) ([]Message, error)
	Append(ctx context.Context, contactID uint, m Message) error
	MarkRead(ctx context.Context, contactID uint) error
}

func ErrContactNotFound() error {
	return httperr.ErrBusiness("contact_not_found")
}

// ======================================================
// MEM STORE
// ======================================================

type MemStore struct {
	mu       sync.RWMutex
	contacts []Contact
	messages map[uint][]Message
}

func NewMemStore() *MemStore {
	s := &MemStore{messages: make(map[uint][]Message)}
	s.contacts, s.messages = SeedData()
	return s
}

func (s *MemStore) Contacts(_ context.Context) ([]Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *MemStore) Conversation(_ context.Context, contactID uint) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[contactID]
	if !ok {
		return nil, ErrContactNotFound()
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemStore) Append(_ context.Context, contactID uint, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[contactID]; !ok {
		return ErrContactNotFound()
	}
	s.messages[contactID] = append(s.messages[contactID], m)

	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			s.contacts[i].LastMessage = m.Content
			s.contacts[i].LastMessageTime = m.Timestamp
			break
		}
	}
	return nil
}

func (s *MemStore) MarkRead(_ context.Context, contactID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, ok := s.messages[contactID]
	if !ok {
		return ErrContactNotFound()
	}
	for i := range msgs {
		msgs[i].Read = true
	}
	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			s.contacts[i].UnreadCount = 0
			break
		}
	}
	return nil
}

var _ Store = (*MemStore)(nil)
