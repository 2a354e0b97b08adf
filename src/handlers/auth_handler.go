package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"spendwise-server/src/auth"
	"spendwise-server/src/cache"
	"spendwise-server/src/config"
	"spendwise-server/src/models"
	"spendwise-server/src/store"
	"spendwise-server/src/util"
)

func Register(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		if !util.ValidateUsername(req.Username) {
			log.Printf("ERROR: Username validation failed during registration - Username: %s", req.Username)
			writeError(w, http.StatusBadRequest, "username must be between 3 and 30 characters")
			return
		}

		if !util.ValidatePassword(req.Password) {
			log.Printf("ERROR: Password validation failed during registration - Username: %s", req.Username)
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for user %s: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		user, err := st.CreateUser(r.Context(), req.Username, hash)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateUsername) {
				log.Printf("ERROR: Registration failed - username already exists - Username: %s", req.Username)
				writeError(w, http.StatusConflict, "username already exists")
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %d", user.Username, user.ID)
		writeJSON(w, http.StatusCreated, models.RegisterResponse{ID: user.ID, Username: user.Username})
	}
}

func Login(st store.Store, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		credentials.Username = strings.TrimSpace(credentials.Username)
		if credentials.Username == "" || credentials.Password == "" {
			writeError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		// Same response for unknown username and wrong password: the caller
		// must not learn which field was wrong.
		user, ok := cache.GetUser(credentials.Username)
		if !ok {
			var err error
			user, err = st.GetUserByUsername(r.Context(), credentials.Username)
			if err != nil {
				log.Printf("ERROR: Failed login attempt - Username: %s from IP %s", credentials.Username, r.RemoteAddr)
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			cache.SetUser(user)
		}

		if !auth.CheckPassword(credentials.Password, user.PasswordHash) {
			log.Printf("ERROR: Invalid password attempt for username %s from IP %s", credentials.Username, r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		tokenString, err := auth.IssueToken([]byte(cfg.JWTSecret), cfg.TokenTTL, user)
		if err != nil {
			log.Printf("ERROR: Failed to generate token for user %s: %v", user.Username, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Username, user.ID)
		writeJSON(w, http.StatusOK, map[string]string{"token": tokenString})
	}
}
