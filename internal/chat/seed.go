package chat

import "github.com/google/uuid"

// SeedData devolve o inbox de demonstração. Os contatos e conversas espelham
// o conjunto exibido na tela de chat unificado.
func SeedData() ([]Contact, map[uint][]Message) {
	contacts := []Contact{
		{
			ID:              1,
			Name:            "Ana Silva",
			Initials:        "AS",
			LastMessage:     "Olá, gostaria de agendar um horário para amanhã",
			LastMessageTime: "10:30",
			UnreadCount:     2,
			Platform:        "whatsapp",
		},
		{
			ID:              2,
			Name:            "Carlos Oliveira",
			Initials:        "CO",
			LastMessage:     "Obrigado pelo atendimento!",
			LastMessageTime: "Ontem",
			UnreadCount:     0,
			Platform:        "whatsapp",
		},
		{
			ID:              3,
			Name:            "Mariana Santos",
			Initials:        "MS",
			LastMessage:     "Qual o valor da coloração?",
			LastMessageTime: "09:15",
			UnreadCount:     1,
			Platform:        "instagram",
		},
		{
			ID:              4,
			Name:            "Roberto Almeida",
			Initials:        "RA",
			LastMessage:     "Vou chegar 10 minutos atrasado",
			LastMessageTime: "Ontem",
			UnreadCount:     0,
			Platform:        "whatsapp",
		},
	}

	messages := map[uint][]Message{
		1: {
			{ID: uuid.NewString(), Sender: "client", Content: "Olá, gostaria de agendar um horário para amanhã", Timestamp: "10:30", Read: false},
			{ID: uuid.NewString(), Sender: "client", Content: "De preferência pela manhã", Timestamp: "10:31", Read: false},
		},
		2: {
			{ID: uuid.NewString(), Sender: "me", Content: "Seu horário está confirmado para sexta às 14:00", Timestamp: "15:02", Read: true},
			{ID: uuid.NewString(), Sender: "client", Content: "Obrigado pelo atendimento!", Timestamp: "15:10", Read: true},
		},
		3: {
			{ID: uuid.NewString(), Sender: "client", Content: "Qual o valor da coloração?", Timestamp: "09:15", Read: false},
		},
		4: {
			{ID: uuid.NewString(), Sender: "client", Content: "Vou chegar 10 minutos atrasado", Timestamp: "11:45", Read: true},
			{ID: uuid.NewString(), Sender: "me", Content: "Sem problema, até já!", Timestamp: "11:47", Read: true},
		},
	}

	return contacts, messages
}
