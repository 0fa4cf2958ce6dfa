package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

func TestMemStoreSeed(t *testing.T) {
	s := NewMemStore()

	contacts, err := s.Contacts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, contacts)

	for _, ct := range contacts {
		msgs, err := s.Conversation(context.Background(), ct.ID)
		require.NoError(t, err)
		require.NotEmpty(t, msgs, "contato %s sem histórico", ct.Name)
	}
}

func TestMemStoreAppend(t *testing.T) {
	s := NewMemStore()

	contacts, err := s.Contacts(context.Background())
	require.NoError(t, err)
	target := contacts[0]

	before, err := s.Conversation(context.Background(), target.ID)
	require.NoError(t, err)

	msg := Message{ID: "m-1", Sender: "me", Content: "Confirmado para amanhã!", Timestamp: "2026-09-01T10:00:00Z", Read: true}
	require.NoError(t, s.Append(context.Background(), target.ID, msg))

	after, err := s.Conversation(context.Background(), target.ID)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	require.Equal(t, "Confirmado para amanhã!", after[len(after)-1].Content)

	// O último envio atualiza o resumo do contato.
	contacts, err = s.Contacts(context.Background())
	require.NoError(t, err)
	for _, ct := range contacts {
		if ct.ID == target.ID {
			require.Equal(t, "Confirmado para amanhã!", ct.LastMessage)
		}
	}
}

func TestMemStoreMarkRead(t *testing.T) {
	s := NewMemStore()

	contacts, err := s.Contacts(context.Background())
	require.NoError(t, err)
	target := contacts[0]

	require.NoError(t, s.MarkRead(context.Background(), target.ID))

	msgs, err := s.Conversation(context.Background(), target.ID)
	require.NoError(t, err)
	for _, m := range msgs {
		require.True(t, m.Read)
	}

	contacts, err = s.Contacts(context.Background())
	require.NoError(t, err)
	for _, ct := range contacts {
		if ct.ID == target.ID {
			require.Zero(t, ct.UnreadCount)
		}
	}
}

func TestMemStoreUnknownContact(t *testing.T) {
	s := NewMemStore()

	_, err := s.Conversation(context.Background(), 999)
	require.True(t, httperr.IsBusiness(err, "contact_not_found"))

	err = s.Append(context.Background(), 999, Message{ID: "m-x"})
	require.True(t, httperr.IsBusiness(err, "contact_not_found"))

	err = s.MarkRead(context.Background(), 999)
	require.True(t, httperr.IsBusiness(err, "contact_not_found"))
}
