package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// MaxCredentialBytes is the longest input bcrypt will hash.
const MaxCredentialBytes = 72

var ErrCredentialTooLong = errors.New("credential exceeds 72 bytes")

// User represents an account that can log in and place orders
type User struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string          `gorm:"type:varchar(255);not null"`
	Name         string          `gorm:"type:varchar(75)"`
	Surname      string          `gorm:"type:varchar(75)"`
	NationalID   string          `gorm:"type:varchar(11)"`
	Phone        string          `gorm:"type:varchar(15)"`
	Role         Role            `gorm:"type:varchar(20);default:'worker';not null"`
	Salary       decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	SecretAnswer string          `gorm:"type:varchar(255)"` // bcrypt hash
	IsActive     bool            `gorm:"default:true"`
	TokenVersion string          `gorm:"type:varchar(64);default:''"` // Rotating it revokes every issued token
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashed, err := hash(password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u *User) SetSecretAnswer(answer string) error {
	hashed, err := hash(answer)
	if err != nil {
		return err
	}
	u.SecretAnswer = hashed
	return nil
}

func (u *User) CheckSecretAnswer(answer string) bool {
	if u.SecretAnswer == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.SecretAnswer), []byte(answer)) == nil
}

func hash(s string) (string, error) {
	if len(s) > MaxCredentialBytes {
		return "", ErrCredentialTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID         uint            `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Surname    string          `json:"surname"`
	NationalID string          `json:"national_id,omitempty"`
	Phone      string          `json:"phone"`
	Role       Role            `json:"role"`
	Salary     decimal.Decimal `json:"salary"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Surname:    u.Surname,
		NationalID: u.NationalID,
		Phone:      u.Phone,
		Role:       u.Role,
		Salary:     u.Salary,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UserRef is the creator view embedded in orders.
type UserRef struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (u *User) ToRef() *UserRef {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserRef{ID: u.ID, Email: u.Email, Name: u.Name, Surname: u.Surname}
}
