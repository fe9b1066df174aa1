package messages

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jefner876/codernet-backend-solo/internal/domain"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/events"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/json"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	messageRepository domain.MessageRepository
	userRepository    domain.UserRepository
	publisher         *events.ChatPublisher
}

func NewHandler(
	messageRepository domain.MessageRepository,
	userRepository domain.UserRepository,
	publisher *events.ChatPublisher,
) *Handler {
	return &Handler{
		messageRepository: messageRepository,
		userRepository:    userRepository,
		publisher:         publisher,
	}
}

// CreateMessageHandler godoc
// @Summary      Post a message
// @Description  Creates a message in a room, authored by an existing user. Payloads with unknown properties or an unresolvable user id are rejected.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request body createMessageRequest true "Message content"
// @Success      201 {object} createMessageResponse "Message created successfully"
// @Failure      400 {object} map[string]interface{} "Bad request - unknown property, missing field or invalid user id"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /messages [post]
func (h *Handler) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := json.ReadBytes(r)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	// Strict allow-list before anything else: unknown properties are
	// rejected even when the known ones are fine.
	if err := validate.Fields(payload, allowedMessageFields...); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	var req createMessageRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	// A present but malformed user id is reported the same way as an
	// unresolvable one. A missing user falls through to the required check.
	if req.User != "" && !validate.ObjectID(req.User) {
		json.WriteValidationError(w, domain.ErrInvalidUserID)
		return
	}

	if err := validate.Struct(req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(req.User)

	ctx := r.Context()
	exists, err := h.userRepository.Exists(ctx, userID)
	if err != nil {
		log.Printf("Failed to check user %s: %v", req.User, err)
		json.WriteInternalError(w, err)
		return
	}
	if !exists {
		json.WriteValidationError(w, domain.ErrInvalidUserID)
		return
	}

	message, err := domain.NewMessage(req.Body, req.Room, userID)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := h.messageRepository.Create(ctx, message); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserID):
			json.WriteValidationError(w, err)
		default:
			log.Printf("Repository error creating message: %v", err)
			json.WriteInternalError(w, err)
		}
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishMessageCreated(ctx, *message); err != nil {
			log.Printf("Error publishing message created: %v", err)
		}
	}

	json.Write(w, http.StatusCreated, createMessageResponse{
		NewMessage: *message,
	})
}

// GetMessagesHandler godoc
// @Summary      List all messages
// @Description  Returns every message, oldest first, with the author embedded in place of the user id
// @Tags         messages
// @Produce      json
// @Success      200 {object} listMessagesResponse "All messages"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /messages [get]
func (h *Handler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageRepository.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		json.WriteInternalError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.PopulatedMessage{}
	}

	json.Write(w, http.StatusOK, listMessagesResponse{
		Messages: messages,
	})
}

// GetMessagesByRoomHandler godoc
// @Summary      List messages in a room
// @Description  Returns the messages whose room matches the path parameter exactly (case-sensitive), oldest first, with the author embedded
// @Tags         messages
// @Produce      json
// @Param        room path string true "Room label"
// @Success      200 {object} listMessagesResponse "Messages in the room"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /messages/{room} [get]
func (h *Handler) GetMessagesByRoomHandler(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")

	messages, err := h.messageRepository.GetByRoom(r.Context(), room)
	if err != nil {
		log.Printf("Failed to list messages for room %s: %v", room, err)
		json.WriteInternalError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.PopulatedMessage{}
	}

	json.Write(w, http.StatusOK, listMessagesResponse{
		Messages: messages,
	})
}
