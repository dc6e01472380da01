package devbackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
)

// Development credentials.
const (
	DefaultAdminEmail    = "admin@partsync.dev"
	DefaultAdminPassword = "partsync"
	DefaultOTP           = "123456"
)

// Options configures the admin login accepted by the server.
type Options struct {
	AdminEmail    string
	AdminPassword string
	OTP           string
}

func (o Options) withDefaults() Options {
	if o.AdminEmail == "" {
		o.AdminEmail = DefaultAdminEmail
	}
	if o.AdminPassword == "" {
		o.AdminPassword = DefaultAdminPassword
	}
	if o.OTP == "" {
		o.OTP = DefaultOTP
	}
	return o
}

// Server implements the backend HTTP contract.
type Server struct {
	catalog *Catalog
	opts    Options

	mu      sync.Mutex
	pending map[string]bool
	tokens  map[string]string
}

// NewServer creates a server over catalog.
func NewServer(catalog *Catalog, opts Options) *Server {
	return &Server{
		catalog: catalog,
		opts:    opts.withDefaults(),
		pending: map[string]bool{},
		tokens:  map[string]string{},
	}
}

// Router returns the HTTP handler.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/api/hardware/cpu", s.handleCPUs).Methods("GET")
	r.HandleFunc("/api/recommend", s.handleRecommend).Methods("POST")
	r.HandleFunc("/api/admin/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/admin/verify-otp", s.handleVerifyOTP).Methods("POST")
	r.HandleFunc("/admin/get/{type}", s.handleListItems).Methods("GET")
	r.HandleFunc("/admin/add/{type}", s.handleAddItem).Methods("POST")
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("devbackend: %s %s id=%s took=%s",
			r.Method, r.URL.Path, r.Header.Get("X-Request-ID"), time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("devbackend: encoding response: %v", err)
	}
}

type messageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Success: status < 300, Message: msg})
}

func (s *Server) handleCPUs(w http.ResponseWriter, r *http.Request) {
	cpus, err := s.catalog.ListCPUs()
	if err != nil {
		logger.Error("devbackend: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to load cpus")
		return
	}
	out := make([]hardware.CPU, len(cpus))
	for i, c := range cpus {
		out[i] = c.CPU
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req hardware.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cpus, err := s.catalog.ListCPUs()
	if err != nil {
		logger.Error("devbackend: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to load cpus")
		return
	}
	var cpu *CPU
	for i := range cpus {
		if cpus[i].ID == req.CPUID {
			cpu = &cpus[i]
			break
		}
	}
	if cpu == nil {
		writeMessage(w, http.StatusNotFound, "unknown cpu")
		return
	}

	gpus, err := s.catalog.ListGPUs()
	if err != nil {
		logger.Error("devbackend: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to load gpus")
		return
	}
	writeJSON(w, http.StatusOK, Recommend(cpu, gpus, req))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email != s.opts.AdminEmail || req.Password != s.opts.AdminPassword {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.mu.Lock()
	s.pending[req.Email] = true
	s.mu.Unlock()
	logger.Info("devbackend: otp for %s is %s", req.Email, s.opts.OTP)
	writeMessage(w, http.StatusOK, "OTP sent")
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending[req.Email] {
		writeMessage(w, http.StatusUnauthorized, "No login in progress")
		return
	}
	if req.OTP != s.opts.OTP {
		writeMessage(w, http.StatusUnauthorized, "Invalid OTP")
		return
	}
	delete(s.pending, req.Email)
	token := uuid.NewString()
	s.tokens[token] = req.Email
	writeJSON(w, http.StatusOK, messageBody{Success: true, Token: token})
}

// ValidToken reports whether token was issued by this server.
func (s *Server) ValidToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	kind, err := hardware.ParseKind(mux.Vars(r)["type"])
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	items, err := s.catalog.ListItems(kind)
	if err != nil {
		logger.Error("devbackend: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to load items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	kind, err := hardware.ParseKind(mux.Vars(r)["type"])
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "fields must be a JSON object of strings")
		return
	}

	id, err := s.catalog.AddItem(kind, fields)
	switch {
	case errors.Is(err, ErrInvalidItem):
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("devbackend: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to add item")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id, "message": kind.String() + " added"})
}
