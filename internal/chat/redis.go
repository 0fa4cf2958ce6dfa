package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	contactsKey = "chat:contacts"
	convKeyFmt  = "chat:conv:%d"
)

// RedisStore guarda o inbox mockado em Redis: contatos numa chave JSON única
// e cada conversa numa lista. Semeado na primeira subida.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(ctx context.Context, rdb *redis.Client) (*RedisStore, error) {
	s := &RedisStore{rdb: rdb}

	exists, err := rdb.Exists(ctx, contactsKey).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *RedisStore) seed(ctx context.Context) error {
	contacts, messages := SeedData()

	if err := s.writeContacts(ctx, contacts); err != nil {
		return err
	}

	for contactID, msgs := range messages {
		key := fmt.Sprintf(convKeyFmt, contactID)
		for _, m := range msgs {
			b, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *RedisStore) readContacts(ctx context.Context) ([]Contact, error) {
	raw, err := s.rdb.Get(ctx, contactsKey).Result()
	if err != nil {
		return nil, err
	}

	var contacts []Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *RedisStore) writeContacts(ctx context.Context, contacts []Contact) error {
	b, err := json.Marshal(contacts)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, contactsKey, b, 0).Err()
}

func (s *RedisStore) Contacts(ctx context.Context) ([]Contact, error) {
	return s.readContacts(ctx)
}

func (s *RedisStore) Conversation(ctx context.Context, contactID uint) ([]Message, error) {
	key := fmt.Sprintf(convKeyFmt, contactID)

	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrContactNotFound()
	}

	raw, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisStore) Append(ctx context.Context, contactID uint, m Message) error {
	key := fmt.Sprintf(convKeyFmt, contactID)

	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrContactNotFound()
	}

	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		return err
	}

	contacts, err := s.readContacts(ctx)
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID == contactID {
			contacts[i].LastMessage = m.Content
			contacts[i].LastMessageTime = m.Timestamp
			break
		}
	}
	return s.writeContacts(ctx, contacts)
}

func (s *RedisStore) MarkRead(ctx context.Context, contactID uint) error {
	msgs, err := s.Conversation(ctx, contactID)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(convKeyFmt, contactID)
	pipe := s.rdb.TxPipeline()
	for i, m := range msgs {
		m.Read = true
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		pipe.LSet(ctx, key, int64(i), b)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	contacts, err := s.readContacts(ctx)
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID == contactID {
			contacts[i].UnreadCount = 0
			break
		}
	}
	return s.writeContacts(ctx, contacts)
}

var _ Store = (*RedisStore)(nil)
