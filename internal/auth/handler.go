package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type usersStore interface {
	Create(ctx context.Context, username, email, name, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*UserRecord, error)
}

type sessionsService interface {
	Login(ctx context.Context, user User, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Handler struct {
	sessions sessionsService
	users    usersStore
}

func NewHandler(sessions sessionsService, users usersStore) *Handler {
	return &Handler{
		sessions: sessions,
		users:    users,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.HandleFunc("/signup", handler.handleSignup).Methods("POST", "OPTIONS").Name("signup")
	authSubrouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", handler.handleLogout).Methods("GET", "OPTIONS").Name("logout")

	// rate limit the auth endpoints to prevent abuse
	for _, m := range middlewares {
		authSubrouter.Use(m)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

func (handler *Handler) readCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("unmarshal json params: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("parse form: %w", err)
	}
	req = credentialsRequest{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
		Email:    r.Form.Get("email"),
		Name:     r.Form.Get("name"),
	}
	return req, nil
}

func (handler *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signup")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	signupReq, err := handler.readCredentials(r)
	if err != nil {
		log.Errorf("signup failed: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	if signupReq.Username == "" || signupReq.Password == "" {
		http.Error(w, "error, username or password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(signupReq.Password)
	if err != nil {
		log.Errorf("signup failed, hash password: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	user, err := handler.users.Create(ctx, signupReq.Username, signupReq.Email, signupReq.Name, passwordHash)
	if errors.Is(err, ErrUsernameTaken) {
		http.Error(w, "error, username already taken", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("signup failed, create user [%s]: %s", signupReq.Username, err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.sessions.Login(ctx, *user, time.Now())
	if err != nil {
		log.Errorf("signup failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("new user signed up: %s", user.Username)
	handler.writeLoginResponse(w, token, user)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	loginReq, err := handler.readCredentials(r)
	if err != nil {
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if loginReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	rec, err := handler.users.GetByUsername(ctx, loginReq.Username)
	if errors.Is(err, ErrUserNotFound) {
		logFailedLogin(r, loginReq.Username)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("login failed, get user [%s]: %s", loginReq.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, rec.PasswordHash) {
		logFailedLogin(r, loginReq.Username)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.sessions.Login(ctx, rec.User, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("login success: %s", rec.Username)
	handler.writeLoginResponse(w, token, &rec.User)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-FITTRACK-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("logout failed => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) writeLoginResponse(w http.ResponseWriter, token string, user *User) {
	respJson, err := json.Marshal(LoginResponse{
		Token: token,
		User:  user,
	})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func logFailedLogin(r *http.Request, username string) {
	reqIp, _ := pkg.ReadUserIP(r)
	log.Tracef("failed login attempt for user [%s] from %s", username, reqIp)
}
