package service_test

import (
	"testing"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCRUD(t *testing.T) {
	e := newEnv(t)
	clients := service.NewClientService(e.repos, e.events)

	client, msg, err := clients.Create(e.caller, service.CreatePartyRequest{
		Email:   "client@example.com",
		Name:    "Can",
		Surname: "Demir",
		Company: "Demir Plastik",
	})
	require.NoError(t, err)
	assert.Equal(t, "The customer was successfully created.", msg)

	// Duplicate emails are accepted
	_, _, err = clients.Create(e.caller, service.CreatePartyRequest{Email: "client@example.com", Name: "Cem"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.count(t, &model.Client{}))

	_, _, err = clients.Create(e.caller, service.CreatePartyRequest{Email: "not-an-email", Name: "Cem"})
	requireKind(t, err, service.KindInvalidInput)

	phone := "+90 555 000 0000"
	updated, err := clients.Update(e.caller, client.ID, service.UpdatePartyRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Demir Plastik", updated.Company)

	list, err := clients.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = clients.Delete(e.caller, client.ID)
	require.NoError(t, err)
	_, err = clients.Delete(e.caller, client.ID)
	requireKind(t, err, service.KindNotFound)
	_, err = clients.Update(e.caller, client.ID, service.UpdatePartyRequest{Phone: &phone})
	requireKind(t, err, service.KindNotFound)
}

func TestSupplierDeleteMissing(t *testing.T) {
	e := newEnv(t)
	msg, err := service.NewSupplierService(e.repos, e.events).Delete(e.caller, 42)
	requireKind(t, err, service.KindNotFound)
	assert.Empty(t, msg)
	assert.Equal(t, "No supplier information was found.", err.(*service.Error).Message)
}
