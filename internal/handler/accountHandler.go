package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/usecase"
)

type AccountHandler struct {
	accounts *usecase.AccountUsecase
	logger   *zap.Logger
}

func NewAccountHandler(accounts *usecase.AccountUsecase, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger.Named("AccountHTTPHandler"),
	}
}

// Signup stores the submitted credentials plus whatever extra profile
// fields came with them. Field presence is not validated; absent values
// store as empty, matching the backend this replaces.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Error("Failed to decode request body for Signup", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Kind: "bad_request"})
		return
	}

	email, _ := body["email"].(string)
	password, _ := body["password"].(string)
	delete(body, "email")
	delete(body, "password")

	if _, err := h.accounts.Register(r.Context(), email, password, body); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Sign-up data received and stored successfully!",
	})
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Error("Failed to decode request body for Login", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Kind: "bad_request"})
		return
	}

	account, err := h.accounts.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    account,
	})
}
