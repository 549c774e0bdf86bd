package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/pkg/jwt"
	"netplas-inventory/pkg/password"
)

const (
	msgRegistered        = "Membership successfully created."
	msgAlreadyLoggedIn   = "You are already logged in."
	msgEmailTaken        = "Please use another email address."
	msgPasswordMismatch  = "The passwords you entered are not the same. Please try again."
	msgBadCredentials    = "Your e-mail or password is incorrect, please try again."
	msgPasswordChanged   = "The password has successfully changed"
	msgWrongSecretAnswer = "The secret question answer is wrong"
	msgUserInfoNotFound  = "User Information Not Found"
)

type AuthService interface {
	Register(caller *Caller, req RegisterRequest) (string, error)
	Login(req LoginRequest) (*LoginResponse, error)
	ChangePassword(caller *Caller, req ChangePasswordRequest) (string, error)
	ResetPassword(req ResetPasswordRequest) (string, error)
	Authenticate(token string) (*Caller, error)
}

type RegisterRequest struct {
	Email         string     `json:"email" validate:"required,email,max=255"`
	Password      string     `json:"password" validate:"required,max=72"`
	PasswordAgain string     `json:"password_again" validate:"required,max=72"`
	Name          string     `json:"name" validate:"notblank,max=75"`
	Surname       string     `json:"surname" validate:"notblank,max=75"`
	NationalID    string     `json:"national_id" validate:"omitempty,numeric,len=11"`
	Phone         string     `json:"phone" validate:"omitempty,max=15"`
	Role          model.Role `json:"type" validate:"omitempty,oneof=worker manager"` // admins are created by admins
	SecretAnswer  string     `json:"secret_answer" validate:"notblank,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	SecretAnswer string `json:"secret_answer" validate:"required,max=72"`
	NewPassword  string `json:"new_password" validate:"required,max=72"`
}

type ResetPasswordRequest struct {
	Email            string `json:"email" validate:"required,email"`
	SecretAnswer     string `json:"secret_answer" validate:"required,max=72"`
	NewPassword      string `json:"new_password" validate:"required,max=72"`
	NewPasswordAgain string `json:"new_password_again" validate:"required,max=72"`
}

type authService struct {
	repos  *repository.Repositories
	issuer *jwt.Issuer
	policy *password.Policy
	events events.Publisher
}

func NewAuthService(repos *repository.Repositories, issuer *jwt.Issuer, policy *password.Policy, publisher events.Publisher) AuthService {
	return &authService{
		repos:  repos,
		issuer: issuer,
		policy: policy,
		events: publisher,
	}
}

func (s *authService) Register(caller *Caller, req RegisterRequest) (string, error) {
	if caller != nil {
		return "", forbidden(msgAlreadyLoggedIn)
	}
	if err := validate(&req); err != nil {
		return "", err
	}

	_, err := s.repos.Users.FindByEmail(req.Email)
	switch {
	case err == nil:
		return "", conflict(msgEmailTaken)
	case !isNotFound(err):
		return "", internal("failed to look up user", err)
	}

	if req.Password != req.PasswordAgain {
		return "", invalid(msgPasswordMismatch)
	}
	if err := s.policy.Validate(req.Password, req.Email, req.Name, req.Surname); err != nil {
		return "", invalid(fmt.Sprintf("The passwords entered are not correct: %v.", err))
	}

	role := req.Role
	if role == "" {
		role = model.RoleWorker
	}
	user := &model.User{
		Email:      req.Email,
		Name:       req.Name,
		Surname:    req.Surname,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Role:       role,
		IsActive:   true,
	}
	user.Stamp(caller.actor())
	if err := user.SetPassword(req.Password); err != nil {
		return "", hashErr(err)
	}
	if err := user.SetSecretAnswer(req.SecretAnswer); err != nil {
		return "", hashErr(err)
	}

	if err := s.repos.Users.Create(user); err != nil {
		return "", writeErr(err, msgEmailTaken)
	}

	s.events.Publish(events.New(events.TypeUser, "user", events.ActionCreated, user.ID, user.Email, nil))
	return msgRegistered, nil
}

func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	// 1. Find user and verify password
	user, err := s.repos.Users.FindByEmail(req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, invalid(msgBadCredentials)
		}
		return nil, internal("failed to look up user", err)
	}
	if !user.IsActive || !user.CheckPassword(req.Password) {
		return nil, invalid(msgBadCredentials)
	}

	// 2. One token version per user, shared by every login until it rotates
	if user.TokenVersion == "" {
		user.TokenVersion = uuid.New().String()
		if err := s.repos.Users.UpdateTokenVersion(user.ID, user.TokenVersion); err != nil {
			return nil, internal("failed to update session", err)
		}
	}

	token, err := s.issuer.GenerateToken(user.ID, user.Email, string(user.Role), user.TokenVersion)
	if err != nil {
		return nil, internal("failed to generate token", err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) ChangePassword(caller *Caller, req ChangePasswordRequest) (string, error) {
	if caller == nil {
		return "", unauthorized("Authentication credentials were not provided.")
	}
	if err := validate(&req); err != nil {
		return "", err
	}

	user, err := s.repos.Users.FindByID(caller.UserID)
	if err != nil {
		return "", lookupErr(err, msgUserInfoNotFound)
	}
	return s.setPassword(user, req.SecretAnswer, req.NewPassword)
}

func (s *authService) ResetPassword(req ResetPasswordRequest) (string, error) {
	if err := validate(&req); err != nil {
		return "", err
	}

	user, err := s.repos.Users.FindByEmail(req.Email)
	if err != nil {
		return "", lookupErr(err, msgUserInfoNotFound)
	}
	if req.NewPassword != req.NewPasswordAgain {
		return "", forbidden(msgPasswordMismatch)
	}
	return s.setPassword(user, req.SecretAnswer, req.NewPassword)
}

// setPassword checks the secret answer and the policy, then stores the new
// password and revokes every token issued so far.
func (s *authService) setPassword(user *model.User, answer, newPassword string) (string, error) {
	if !user.CheckSecretAnswer(answer) {
		return "", forbidden(msgWrongSecretAnswer)
	}
	if err := s.policy.Validate(newPassword, user.Email, user.Name, user.Surname); err != nil {
		return "", invalid(fmt.Sprintf("The passwords entered are not correct: %v.", err))
	}
	if err := user.SetPassword(newPassword); err != nil {
		return "", hashErr(err)
	}
	if err := s.repos.Users.UpdatePassword(user.ID, user.Password, uuid.New().String()); err != nil {
		return "", internal("failed to update password", err)
	}

	s.events.Publish(events.New(events.TypeUser, "user", events.ActionUpdated, user.ID, user.Email, nil))
	return msgPasswordChanged, nil
}

func (s *authService) Authenticate(token string) (*Caller, error) {
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrMissingToken) {
			return nil, unauthorized("Missing authorization token")
		}
		return nil, unauthorized("Invalid or expired token")
	}

	// Check strict session against DB
	user, err := s.repos.Users.FindByID(claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, unauthorized("User not found")
		}
		return nil, internal("failed to look up user", err)
	}
	if !user.IsActive {
		return nil, unauthorized("User account is inactive")
	}
	if user.TokenVersion == "" || user.TokenVersion != claims.TokenVersion {
		return nil, unauthorized("Session expired, please log in again")
	}

	return &Caller{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}
