package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

var (
	// ErrInvalidCredentials is the all-or-nothing login failure
	ErrInvalidCredentials = errors.New("Credenciales incorrectas.")
	// ErrEmailTaken rejects a registration with an existing email
	ErrEmailTaken = errors.New("Este correo electrónico ya está registrado.")
	// ErrWrongPassword rejects a password change with a bad old password
	ErrWrongPassword = errors.New("La contraseña actual es incorrecta.")
	// ErrSelfDelete rejects deleting the caller's own account
	ErrSelfDelete = errors.New("No puedes eliminar tu propia cuenta.")
)

// AccountService handles authentication and user administration.
// Credentials are compared and held in plain text, matching the demo
// data set this service reproduces.
type AccountService struct {
	store  *store.Store
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(store *store.Store, tokens *auth.TokenManager) *AccountService {
	return &AccountService{
		store:  store,
		tokens: tokens,
		logger: util.GetLogger(),
	}
}

// Session is the result of a successful login or registration
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates by case-insensitive email and exact password match
func (s *AccountService) Login(email, password string) (*Session, error) {
	user, ok := s.store.FindUserByEmail(email)
	if !ok || user.Password != password {
		util.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	util.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return &Session{Token: token, User: user}, nil
}

// Register creates a customer account and logs it in immediately. A
// duplicate email (case-insensitive) fails without touching the user
// list.
func (s *AccountService) Register(name, email, password string) (*Session, error) {
	if _, exists := s.store.FindUserByEmail(email); exists {
		util.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, ErrEmailTaken
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     models.RoleCustomer,
	}
	s.store.CreateUser(&user)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	util.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return &Session{Token: token, User: user}, nil
}

// ChangePassword replaces a user's password after verifying the old one
func (s *AccountService) ChangePassword(userID int64, oldPassword, newPassword string) error {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user.Password != oldPassword {
		return ErrWrongPassword
	}
	return s.store.SetUserPassword(userID, newPassword)
}

// CreateUser creates an account with an explicit role (admin operation)
func (s *AccountService) CreateUser(name, email, password string, role models.Role) (*models.User, error) {
	if _, exists := s.store.FindUserByEmail(email); exists {
		return nil, ErrEmailTaken
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     role,
	}
	s.store.CreateUser(&user)

	s.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(role)))
	return &user, nil
}

// DeleteUser removes an account; the caller cannot delete themselves
func (s *AccountService) DeleteUser(callerID, userID int64) error {
	if callerID == userID {
		return ErrSelfDelete
	}
	return s.store.DeleteUser(userID)
}

// ListUsers returns all accounts (admin operation)
func (s *AccountService) ListUsers() []models.User {
	return s.store.GetUsers()
}

// GetUser retrieves an account by ID
func (s *AccountService) GetUser(userID int64) (models.User, error) {
	return s.store.GetUserByID(userID)
}
