package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/pkg/password"
)

const msgUserNotFound = "User not found."

type UserService interface {
	CreateUser(caller *Caller, req CreateUserRequest) (*model.User, error)
	UpdateUser(caller *Caller, id uint, req UpdateUserRequest) (*model.User, error)
	SetPassword(email, newPassword string) error
	GetAllUsers() ([]model.User, error)
	GetUser(id uint) (*model.User, error)
}

type CreateUserRequest struct {
	Email        string           `json:"email" validate:"required,email,max=255"`
	Password     string           `json:"password" validate:"required,max=72"`
	Name         string           `json:"name" validate:"notblank,max=75"`
	Surname      string           `json:"surname" validate:"notblank,max=75"`
	NationalID   string           `json:"national_id" validate:"omitempty,numeric,len=11"`
	Phone        string           `json:"phone" validate:"omitempty,max=15"`
	Role         model.Role       `json:"role" validate:"omitempty,oneof=worker manager admin"`
	Salary       *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	SecretAnswer string           `json:"secret_answer" validate:"notblank,max=72"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name" validate:"omitempty,notblank,max=75"`
	Surname  *string          `json:"surname" validate:"omitempty,notblank,max=75"`
	Phone    *string          `json:"phone" validate:"omitempty,max=15"`
	Role     *model.Role      `json:"role" validate:"omitempty,oneof=worker manager admin"`
	Salary   *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	IsActive *bool            `json:"is_active"`
}

type userService struct {
	repos  *repository.Repositories
	policy *password.Policy
	events events.Publisher
}

func NewUserService(repos *repository.Repositories, policy *password.Policy, publisher events.Publisher) UserService {
	return &userService{
		repos:  repos,
		policy: policy,
		events: publisher,
	}
}

func (s *userService) CreateUser(caller *Caller, req CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if err := validate(&req); err != nil {
		return nil, err
	}

	// 2. Check if email already exists
	if _, err := s.repos.Users.FindByEmail(req.Email); err == nil {
		return nil, conflict(msgEmailTaken)
	}
	if err := s.policy.Validate(req.Password, req.Email, req.Name, req.Surname); err != nil {
		return nil, invalid(fmt.Sprintf("The passwords entered are not correct: %v.", err))
	}

	user := &model.User{
		Email:      req.Email,
		Name:       req.Name,
		Surname:    req.Surname,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Role:       req.Role,
		Salary:     decimal.Zero,
		IsActive:   true,
	}
	if user.Role == "" {
		user.Role = model.RoleWorker
	}
	if req.Salary != nil {
		user.Salary = *req.Salary
	}
	user.Stamp(caller.actor())
	if err := user.SetPassword(req.Password); err != nil {
		return nil, hashErr(err)
	}
	if err := user.SetSecretAnswer(req.SecretAnswer); err != nil {
		return nil, hashErr(err)
	}

	// 3. Save
	if err := s.repos.Users.Create(user); err != nil {
		return nil, writeErr(err, msgEmailTaken)
	}

	s.events.Publish(events.New(events.TypeUser, "user", events.ActionCreated, user.ID, user.Email, caller.eventActor()))
	return user, nil
}

func (s *userService) UpdateUser(caller *Caller, id uint, req UpdateUserRequest) (*model.User, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	user, err := s.repos.Users.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, msgUserNotFound)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Salary != nil {
		user.Salary = *req.Salary
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.Stamp(caller.actor())

	if err := s.repos.Users.Update(user); err != nil {
		return nil, writeErr(err, msgEmailTaken)
	}

	s.events.Publish(events.New(events.TypeUser, "user", events.ActionUpdated, user.ID, user.Email, caller.eventActor()))
	return user, nil
}

// SetPassword replaces a password without the secret answer, for operators.
func (s *userService) SetPassword(email, newPassword string) error {
	user, err := s.repos.Users.FindByEmail(email)
	if err != nil {
		return lookupErr(err, msgUserInfoNotFound)
	}
	if err := s.policy.Validate(newPassword, user.Email, user.Name, user.Surname); err != nil {
		return invalid(fmt.Sprintf("The passwords entered are not correct: %v.", err))
	}
	if err := user.SetPassword(newPassword); err != nil {
		return hashErr(err)
	}
	if err := s.repos.Users.UpdatePassword(user.ID, user.Password, uuid.New().String()); err != nil {
		return internal("failed to update password", err)
	}
	return nil
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	users, err := s.repos.Users.FindAll()
	if err != nil {
		return nil, internal("failed to list users", err)
	}
	return users, nil
}

func (s *userService) GetUser(id uint) (*model.User, error) {
	user, err := s.repos.Users.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, msgUserNotFound)
	}
	return user, nil
}
