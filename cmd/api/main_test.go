package main

import (
	"testing"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/internal/service"
	"netplas-inventory/internal/testdb"
	"netplas-inventory/pkg/config"
	"netplas-inventory/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin(t *testing.T) {
	repos := repository.New(testdb.Open(t))
	users := service.NewUserService(repos, password.NewPolicy(8, 0.7), events.Nop())
	cfg := &config.Config{
		SeedAdminEmail:        "admin@example.com",
		SeedAdminPassword:     "tiger-lily-harbor-42",
		SeedAdminSecretAnswer: "first pet was a tortoise",
	}

	seedAdmin(users, cfg)
	// A second start finds the account and leaves it alone
	seedAdmin(users, cfg)

	all, err := users.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, all, 1)

	admin := all[0]
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, admin.CheckPassword(cfg.SeedAdminPassword))
	assert.True(t, admin.CheckSecretAnswer(cfg.SeedAdminSecretAnswer))
	assert.False(t, admin.CheckSecretAnswer(cfg.SeedAdminPassword))
}

func TestSeedAdminSkippedWithoutPassword(t *testing.T) {
	repos := repository.New(testdb.Open(t))
	users := service.NewUserService(repos, password.NewPolicy(8, 0.7), events.Nop())

	seedAdmin(users, &config.Config{SeedAdminEmail: "admin@example.com"})

	all, err := users.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, all)
}
