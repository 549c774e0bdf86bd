package main

import (
	"errors"
	"log"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/internal/service"
	"netplas-inventory/pkg/password"
)

const (
	emailFlag        = "email"
	passwordFlag     = "password"
	nameFlag         = "name"
	surnameFlag      = "surname"
	roleFlag         = "role"
	secretAnswerFlag = "secret-answer"
)

var resetPasswordFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "admin@example.com",
		Usage: "Email of the account to reset",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "New password (required)",
	},
}

var createUserFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Email of the new account (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Password of the new account (required)",
	},
	nameFlag: &cobraflags.StringFlag{
		Name:  nameFlag,
		Value: "",
		Usage: "First name",
	},
	surnameFlag: &cobraflags.StringFlag{
		Name:  surnameFlag,
		Value: "",
		Usage: "Last name",
	},
	roleFlag: &cobraflags.StringFlag{
		Name:  roleFlag,
		Value: string(model.RoleAdmin),
		Usage: "Role: worker, manager or admin",
	},
	secretAnswerFlag: &cobraflags.StringFlag{
		Name:  secretAnswerFlag,
		Value: "",
		Usage: "Answer to the password recovery question (required)",
	},
}

func newResetPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an account without its secret answer",
		Long: `Set a new password for an account. The new password must pass the same
policy as the API, and every token issued to the account stops working.`,
		RunE: resetPasswordCommand,
	}
	cobraflags.RegisterMap(cmd, resetPasswordFlags)
	return cmd
}

func newCreateUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account, an admin by default",
		RunE:  createUserCommand,
	}
	cobraflags.RegisterMap(cmd, createUserFlags)
	return cmd
}

func resetPasswordCommand(_ *cobra.Command, _ []string) error {
	email := resetPasswordFlags[emailFlag].GetString()
	newPassword := resetPasswordFlags[passwordFlag].GetString()
	if newPassword == "" {
		return errors.New("--password is required")
	}

	users, closeFn, err := userService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := users.SetPassword(email, newPassword); err != nil {
		return err
	}
	log.Printf("Password for %s has been reset", email)
	return nil
}

func createUserCommand(_ *cobra.Command, _ []string) error {
	req := service.CreateUserRequest{
		Email:        createUserFlags[emailFlag].GetString(),
		Password:     createUserFlags[passwordFlag].GetString(),
		Name:         createUserFlags[nameFlag].GetString(),
		Surname:      createUserFlags[surnameFlag].GetString(),
		Role:         model.Role(createUserFlags[roleFlag].GetString()),
		SecretAnswer: createUserFlags[secretAnswerFlag].GetString(),
	}

	users, closeFn, err := userService()
	if err != nil {
		return err
	}
	defer closeFn()

	user, err := users.CreateUser(nil, req)
	if err != nil {
		return err
	}
	log.Printf("User %s created with role %s (id %d)", user.Email, user.Role, user.ID)
	return nil
}

func userService() (service.UserService, func(), error) {
	db, cfg, err := connect()
	if err != nil {
		return nil, nil, err
	}
	policy := password.NewPolicy(cfg.PasswordMinLength, cfg.PasswordMaxSimilarity)
	users := service.NewUserService(repository.New(db), policy, events.Nop())
	return users, func() { closeDB(db) }, nil
}
