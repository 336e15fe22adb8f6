package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chatcore/internal/common"
	"chatcore/internal/convo/service"
)

type ConversationHandler struct {
	svc service.ConversationService
	log *zap.Logger
}

func NewConversationHandler(svc service.ConversationService, log *zap.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: log}
}

// Register mounts the conversation and message routes on an authenticated
// subrouter.
func (h *ConversationHandler) Register(r *mux.Router) {
	r.HandleFunc("/conversations", h.CreateConversation).Methods(http.MethodPost)
	r.HandleFunc("/conversations", h.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}", h.DeleteConversation).Methods(http.MethodDelete)
	r.HandleFunc("/conversations/{id}/leave", h.LeaveConversation).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/read", h.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{id}/messages", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id}", h.EditMessage).Methods(http.MethodPatch)
	r.HandleFunc("/messages/{id}", h.DeleteMessage).Methods(http.MethodDelete)
}

type createConversationRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
}

func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	conv, err := h.svc.CreateConversation(r.Context(), common.UserIDFromContext(r.Context()), req.ParticipantIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, conv)
}

func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListConversations(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ConversationHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["id"]
	if err := h.svc.DeleteConversation(r.Context(), common.UserIDFromContext(r.Context()), convID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConversationHandler) LeaveConversation(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["id"]
	if err := h.svc.LeaveConversation(r.Context(), common.UserIDFromContext(r.Context()), convID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConversationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["id"]
	if err := h.svc.MarkRead(r.Context(), common.UserIDFromContext(r.Context()), convID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type sendMessageRequest struct {
	Content   string  `json:"content"`
	ReplyToID *string `json:"reply_to_id,omitempty"`
}

func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["id"]

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), common.UserIDFromContext(r.Context()), convID, req.Content, req.ReplyToID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *ConversationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["id"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	views, err := h.svc.ListMessages(r.Context(), common.UserIDFromContext(r.Context()), convID, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

type editMessageRequest struct {
	Content string `json:"content"`
}

func (h *ConversationHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	msgID := mux.Vars(r)["id"]

	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.svc.EditMessage(r.Context(), common.UserIDFromContext(r.Context()), msgID, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

func (h *ConversationHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	msgID := mux.Vars(r)["id"]
	if err := h.svc.DeleteMessage(r.Context(), common.UserIDFromContext(r.Context()), msgID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConversationHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotParticipant), errors.Is(err, service.ErrNotSender):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.log.Error("conversation handler", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
