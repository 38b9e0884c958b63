package handlers

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService services.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/users/{id}", h.GetUser).Methods("GET")
	router.HandleFunc("/users/{id}", h.UpdateUser).Methods("PATCH")
}

type createUserRequest struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	InvestorType string `json:"investorType" validate:"omitempty,oneof=conservative balanced aggressive"`
	// Interests is kept raw: anything that is not a JSON array is treated as no interests.
	Interests json.RawMessage `json:"interests"`
}

type updateUserRequest struct {
	Username     *string   `json:"username" validate:"omitempty,min=1"`
	Password     *string   `json:"password" validate:"omitempty,min=1"`
	InvestorType *string   `json:"investorType" validate:"omitempty,oneof=conservative balanced aggressive"`
	Interests    *[]string `json:"interests" validate:"omitempty,dive,oneof=fundamental technical pattern"`
}

type interestList struct {
	Tags []string `validate:"dive,oneof=fundamental technical pattern"`
}

// CreateUser registers a new dashboard user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	interests, ok := parseInterests(req.Interests)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := h.userService.CreateUser(models.NewUser{
		Username:     req.Username,
		Password:     req.Password,
		InvestorType: models.InvestorType(req.InvestorType),
		Interests:    interests,
	})
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUserByID(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, h.logger, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUser changes profile fields such as investor type and interests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	patch := models.UserPatch{
		Username: req.Username,
		Password: req.Password,
	}
	if req.InvestorType != nil {
		t := models.InvestorType(*req.InvestorType)
		patch.InvestorType = &t
	}
	if req.Interests != nil {
		interests := toInterests(*req.Interests)
		patch.Interests = &interests
	}

	user, err := h.userService.UpdateUser(mux.Vars(r)["id"], patch)
	if err != nil {
		writeStoreError(w, r, h.logger, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// parseInterests returns an empty list for anything that is not an array.
// An array must hold only known interest tags.
func parseInterests(raw json.RawMessage) ([]models.Interest, bool) {
	var tags []string
	if len(raw) == 0 || raw[0] != '[' {
		return []models.Interest{}, true
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, false
	}
	if err := validate.Struct(interestList{Tags: tags}); err != nil {
		return nil, false
	}
	return toInterests(tags), true
}

// toInterests drops repeated tags, keeping first occurrences in order
func toInterests(tags []string) []models.Interest {
	interests := make([]models.Interest, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(interests, models.Interest(tag)) {
			interests = append(interests, models.Interest(tag))
		}
	}
	return interests
}
