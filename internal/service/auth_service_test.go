package service_test

import (
	"strings"
	"testing"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(email string) service.RegisterRequest {
	return service.RegisterRequest{
		Email:         email,
		Password:      strongPassword,
		PasswordAgain: strongPassword,
		Name:          "Ayse",
		Surname:       "Yilmaz",
		SecretAnswer:  "blue",
	}
}

func TestRegister(t *testing.T) {
	e := newEnv(t)

	msg, err := e.auth().Register(nil, registerRequest("ayse@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Membership successfully created.", msg)

	user, err := e.repos.Users.FindByEmail("ayse@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleWorker, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, strongPassword, user.Password)
	assert.True(t, user.CheckPassword(strongPassword))
	assert.True(t, user.CheckSecretAnswer("blue"))
	assert.Equal(t, []string{"user.created"}, e.events.keys())
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth().Register(nil, registerRequest("ayse@example.com"))
	require.NoError(t, err)

	_, err = e.auth().Register(nil, registerRequest("ayse@example.com"))
	requireKind(t, err, service.KindConflict)
	assert.Equal(t, int64(1), e.count(t, &model.User{}))
}

func TestRegisterRejections(t *testing.T) {
	tests := []struct {
		name   string
		caller *service.Caller
		mutate func(r *service.RegisterRequest)
		kind   service.ErrorKind
	}{
		{
			name:   "already logged in",
			caller: &service.Caller{UserID: 1},
			mutate: func(r *service.RegisterRequest) {},
			kind:   service.KindForbidden,
		},
		{
			name:   "mismatched passwords",
			mutate: func(r *service.RegisterRequest) { r.PasswordAgain = strongPassword + "x" },
			kind:   service.KindInvalidInput,
		},
		{
			name: "weak password",
			mutate: func(r *service.RegisterRequest) {
				r.Password, r.PasswordAgain = "12345678", "12345678"
			},
			kind: service.KindInvalidInput,
		},
		{
			name:   "missing email",
			mutate: func(r *service.RegisterRequest) { r.Email = "" },
			kind:   service.KindInvalidInput,
		},
		{
			name:   "unknown role",
			mutate: func(r *service.RegisterRequest) { r.Role = "owner" },
			kind:   service.KindInvalidInput,
		},
		{
			name:   "admin role",
			mutate: func(r *service.RegisterRequest) { r.Role = model.RoleAdmin },
			kind:   service.KindInvalidInput,
		},
		{
			name: "password longer than 72 characters",
			mutate: func(r *service.RegisterRequest) {
				long := strings.Repeat("harbor-", 13)
				r.Password, r.PasswordAgain = long, long
			},
			kind: service.KindInvalidInput,
		},
		{
			name: "multibyte password longer than 72 bytes",
			mutate: func(r *service.RegisterRequest) {
				long := strings.Repeat("şğü", 13)
				r.Password, r.PasswordAgain = long, long
			},
			kind: service.KindInvalidInput,
		},
		{
			name:   "multibyte secret answer longer than 72 bytes",
			mutate: func(r *service.RegisterRequest) { r.SecretAnswer = strings.Repeat("ş", 40) },
			kind:   service.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			req := registerRequest("ayse@example.com")
			tt.mutate(&req)

			_, err := e.auth().Register(tt.caller, req)
			requireKind(t, err, tt.kind)
			assert.Equal(t, int64(0), e.count(t, &model.User{}))
		})
	}
}

func TestLoginReusesTokenVersion(t *testing.T) {
	e := newEnv(t)
	e.register(t, "ayse@example.com", "blue")

	first, err := e.auth().Login(service.LoginRequest{Email: "ayse@example.com", Password: strongPassword})
	require.NoError(t, err)
	second, err := e.auth().Login(service.LoginRequest{Email: "ayse@example.com", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", first.User.Email)

	for _, token := range []string{first.Token, second.Token} {
		caller, err := e.auth().Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, "ayse@example.com", caller.Email)
		assert.Equal(t, model.RoleWorker, caller.Role)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	e := newEnv(t)
	e.register(t, "ayse@example.com", "blue")

	for _, req := range []service.LoginRequest{
		{Email: "ayse@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: strongPassword},
	} {
		_, err := e.auth().Login(req)
		requireKind(t, err, service.KindInvalidInput)
		assert.Equal(t, "Your e-mail or password is incorrect, please try again.", err.(*service.Error).Message)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	e := newEnv(t)
	e.register(t, "ayse@example.com", "blue")
	require.NoError(t, e.db.Model(&model.User{}).Where("email = ?", "ayse@example.com").Update("is_active", false).Error)

	_, err := e.auth().Login(service.LoginRequest{Email: "ayse@example.com", Password: strongPassword})
	requireKind(t, err, service.KindInvalidInput)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth().Authenticate("")
	requireKind(t, err, service.KindUnauthorized)
	_, err = e.auth().Authenticate("not.a.token")
	requireKind(t, err, service.KindUnauthorized)
}

func TestChangePasswordRevokesTokens(t *testing.T) {
	e := newEnv(t)
	e.register(t, "ayse@example.com", "blue")
	login, err := e.auth().Login(service.LoginRequest{Email: "ayse@example.com", Password: strongPassword})
	require.NoError(t, err)
	caller, err := e.auth().Authenticate(login.Token)
	require.NoError(t, err)

	_, err = e.auth().ChangePassword(caller, service.ChangePasswordRequest{SecretAnswer: "red", NewPassword: "quiet-river-stone-77"})
	requireKind(t, err, service.KindForbidden)

	msg, err := e.auth().ChangePassword(caller, service.ChangePasswordRequest{SecretAnswer: "blue", NewPassword: "quiet-river-stone-77"})
	require.NoError(t, err)
	assert.Equal(t, "The password has successfully changed", msg)

	_, err = e.auth().Authenticate(login.Token)
	requireKind(t, err, service.KindUnauthorized)

	_, err = e.auth().Login(service.LoginRequest{Email: "ayse@example.com", Password: "quiet-river-stone-77"})
	assert.NoError(t, err)
}

func TestChangePasswordRequiresCaller(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth().ChangePassword(nil, service.ChangePasswordRequest{SecretAnswer: "blue", NewPassword: strongPassword})
	requireKind(t, err, service.KindUnauthorized)
}

func TestResetPassword(t *testing.T) {
	e := newEnv(t)
	e.register(t, "ayse@example.com", "blue")
	before, err := e.repos.Users.FindByEmail("ayse@example.com")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := e.auth().ResetPassword(service.ResetPasswordRequest{
			Email: "nobody@example.com", SecretAnswer: "blue", NewPassword: "quiet-river-stone-77", NewPasswordAgain: "quiet-river-stone-77",
		})
		requireKind(t, err, service.KindNotFound)
	})

	t.Run("mismatched new passwords keep the stored password", func(t *testing.T) {
		_, err := e.auth().ResetPassword(service.ResetPasswordRequest{
			Email: "ayse@example.com", SecretAnswer: "blue", NewPassword: "quiet-river-stone-77", NewPasswordAgain: "quiet-river-stone-78",
		})
		requireKind(t, err, service.KindForbidden)

		after, err := e.repos.Users.FindByEmail("ayse@example.com")
		require.NoError(t, err)
		assert.Equal(t, before.Password, after.Password)
		assert.True(t, after.CheckPassword(strongPassword))
	})

	t.Run("wrong answer", func(t *testing.T) {
		_, err := e.auth().ResetPassword(service.ResetPasswordRequest{
			Email: "ayse@example.com", SecretAnswer: "green", NewPassword: "quiet-river-stone-77", NewPasswordAgain: "quiet-river-stone-77",
		})
		requireKind(t, err, service.KindForbidden)
	})

	t.Run("success", func(t *testing.T) {
		msg, err := e.auth().ResetPassword(service.ResetPasswordRequest{
			Email: "ayse@example.com", SecretAnswer: "blue", NewPassword: "quiet-river-stone-77", NewPasswordAgain: "quiet-river-stone-77",
		})
		require.NoError(t, err)
		assert.Equal(t, "The password has successfully changed", msg)

		after, err := e.repos.Users.FindByEmail("ayse@example.com")
		require.NoError(t, err)
		assert.True(t, after.CheckPassword("quiet-river-stone-77"))
	})
}
