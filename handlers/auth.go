package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"schoolms/core"
	"schoolms/middleware"
	"schoolms/models/api"
	"schoolms/services"
)

// AuthHandler serves the teacher login and session endpoints
type AuthHandler struct {
	teachersService services.TeachersService
}

func NewAuthHandler(teachersService services.TeachersService) *AuthHandler {
	return &AuthHandler{teachersService: teachersService}
}

// LoginRequest is the request body for teacher login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetupEndpoints registers the auth routes on the given router
func (h *AuthHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.TeacherAuthMiddleware) {
	log.Printf("🚀 Registering auth endpoints")

	router.HandleFunc("/auth/login", h.HandleLogin).Methods("POST")
	log.Printf("✅ POST /auth/login endpoint registered")

	router.HandleFunc("/auth/session", authMiddleware.WithAuth(h.HandleSession)).Methods("GET")
	log.Printf("✅ GET /auth/session endpoint registered")
}

// HandleLogin validates a username/password pair and returns the teacher profile
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Login request received from %s", r.RemoteAddr)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		log.Printf("❌ Missing username or password in login request")
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	teacher, err := h.teachersService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if core.IsUnauthorizedError(err) {
			log.Printf("❌ Login failed for username: %s", req.Username)
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		log.Printf("❌ Failed to process login for username %s: %v", req.Username, err)
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainTeacherToAPITeacher(teacher))
}

// HandleSession returns the teacher resolved from the request credentials
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Session check request received from %s", r.RemoteAddr)

	teacher := requireTeacher(w, r)
	if teacher == nil {
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainTeacherToAPITeacher(teacher))
}
