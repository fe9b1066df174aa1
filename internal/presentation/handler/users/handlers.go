package users

import (
	"log"
	"net/http"

	"github.com/jefner876/codernet-backend-solo/internal/domain"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/events"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/json"
)

type Handler struct {
	userRepository domain.UserRepository
	publisher      *events.ChatPublisher
}

func NewHandler(userRepository domain.UserRepository, publisher *events.ChatPublisher) *Handler {
	return &Handler{
		userRepository: userRepository,
		publisher:      publisher,
	}
}

// GetUsersHandler godoc
// @Summary      List users
// @Description  Returns all registered users
// @Tags         users
// @Produce      json
// @Success      200 {array} domain.User "All users"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /users [get]
func (h *Handler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepository.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		json.WriteInternalError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	json.Write(w, http.StatusOK, users)
}

// CreateUserHandler godoc
// @Summary      Register a new user
// @Description  Creates a user with the given username and email. The avatar defaults to a placeholder when omitted.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body createUserRequest true "User registration parameters"
// @Success      201 {object} createUserResponse "User created successfully"
// @Failure      400 {object} map[string]interface{} "Bad request - missing username or email"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /users [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Avatar)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()
	if err := h.userRepository.Create(ctx, user); err != nil {
		log.Printf("Repository error creating user: %v", err)
		json.WriteInternalError(w, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishUserCreated(ctx, *user); err != nil {
			log.Printf("Error publishing user created: %v", err)
		}
	}

	json.Write(w, http.StatusCreated, createUserResponse{
		NewUser: *user,
	})
}
