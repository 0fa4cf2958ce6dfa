package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/StudioBelezaApps/salon-crm/internal/chat"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/timezone"
)

// ChatHandler serve o inbox unificado. O conteúdo é semeado e nenhuma
// mensagem sai do salão: Append grava apenas no store.
type ChatHandler struct {
	store chat.Store
}

func NewChatHandler(store chat.Store) *ChatHandler {
	return &ChatHandler{store: store}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// ======================================================
// CONTACTS
// ======================================================

func (h *ChatHandler) Contacts(c *gin.Context) {
	contacts, err := h.store.Contacts(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "chat_unavailable", "Chat indisponível.")
		return
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		filtered := contacts[:0]
		for _, ct := range contacts {
			if strings.Contains(strings.ToLower(ct.Name), query) {
				filtered = append(filtered, ct)
			}
		}
		contacts = filtered
	}

	httpresp.List(c, contacts)
}

// ======================================================
// CONVERSATION
// ======================================================

// Conversation devolve o histórico e marca as mensagens do contato como lidas,
// espelhando o comportamento de abrir a conversa no inbox.
func (h *ChatHandler) Conversation(c *gin.Context) {
	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	msgs, err := h.store.Conversation(c.Request.Context(), uint(contactID))
	if err != nil {
		if httperr.IsBusiness(err, "contact_not_found") {
			httperr.NotFound(c, "contact_not_found", "Contato não encontrado.")
			return
		}
		httperr.Internal(c, "chat_unavailable", "Chat indisponível.")
		return
	}

	if err := h.store.MarkRead(c.Request.Context(), uint(contactID)); err != nil {
		httperr.Internal(c, "chat_unavailable", "Chat indisponível.")
		return
	}

	httpresp.List(c, msgs)
}

// ======================================================
// SEND
// ======================================================

func (h *ChatHandler) Send(c *gin.Context) {
	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mensagem vazia.")
		return
	}

	msg := chat.Message{
		ID:        uuid.NewString(),
		Sender:    "me",
		Content:   req.Content,
		Timestamp: timezone.Now().Format("15:04"),
		Read:      true,
	}

	if err := h.store.Append(c.Request.Context(), uint(contactID), msg); err != nil {
		if httperr.IsBusiness(err, "contact_not_found") {
			httperr.NotFound(c, "contact_not_found", "Contato não encontrado.")
			return
		}
		httperr.Internal(c, "chat_unavailable", "Chat indisponível.")
		return
	}

	httpresp.Created(c, msg)
}
