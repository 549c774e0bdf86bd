package service

import (
	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

type CreatePartyRequest struct {
	Email   string `json:"email" validate:"required,email,max=255"`
	Name    string `json:"name" validate:"notblank,max=75"`
	Surname string `json:"surname" validate:"max=75"`
	Phone   string `json:"phone" validate:"max=20"`
	Address string `json:"address"`
	Company string `json:"company" validate:"max=150"`
}

type UpdatePartyRequest struct {
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Name    *string `json:"name" validate:"omitempty,notblank,max=75"`
	Surname *string `json:"surname" validate:"omitempty,max=75"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address"`
	Company *string `json:"company" validate:"omitempty,max=150"`
}

// PartyService manages clients or suppliers. Emails are checked for format
// only; duplicates are allowed.
type PartyService[T any] interface {
	List() ([]T, error)
	Create(caller *Caller, req CreatePartyRequest) (*T, string, error)
	Update(caller *Caller, id uint, req UpdatePartyRequest) (*T, error)
	Delete(caller *Caller, id uint) (string, error)
}

type partyRow[T any] interface {
	*T
	GetID() uint
	Stamp(actor string)
	Contact() *model.Party
}

type partyMessages struct {
	entity   string
	created  string
	removed  string
	notFound string
}

type partyService[T any, P partyRow[T]] struct {
	repo   repository.PartyRepository[T]
	msgs   partyMessages
	events events.Publisher
}

func NewClientService(repos *repository.Repositories, publisher events.Publisher) PartyService[model.Client] {
	return &partyService[model.Client, *model.Client]{
		repo: repos.Clients,
		msgs: partyMessages{
			entity:   "client",
			created:  "The customer was successfully created.",
			removed:  "Customer information has been successfully removed.",
			notFound: "Customer information could not be found.",
		},
		events: publisher,
	}
}

func NewSupplierService(repos *repository.Repositories, publisher events.Publisher) PartyService[model.Supplier] {
	return &partyService[model.Supplier, *model.Supplier]{
		repo: repos.Suppliers,
		msgs: partyMessages{
			entity:   "supplier",
			created:  "The supplier was successfully created.",
			removed:  "Supplier information has been successfully removed.",
			notFound: "No supplier information was found.",
		},
		events: publisher,
	}
}

func (s *partyService[T, P]) List() ([]T, error) {
	parties, err := s.repo.FindAll()
	if err != nil {
		return nil, internal("failed to list "+s.msgs.entity+"s", err)
	}
	return parties, nil
}

func (s *partyService[T, P]) Create(caller *Caller, req CreatePartyRequest) (*T, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	party := P(new(T))
	*party.Contact() = model.Party{
		Email:   req.Email,
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	}
	party.Stamp(caller.actor())
	if err := s.repo.Create(party); err != nil {
		return nil, "", internal("failed to save "+s.msgs.entity, err)
	}

	s.publish(caller, events.ActionCreated, party)
	return party, s.msgs.created, nil
}

func (s *partyService[T, P]) Update(caller *Caller, id uint, req UpdatePartyRequest) (*T, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, s.msgs.notFound)
	}
	party := P(found)
	contact := party.Contact()
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Surname != nil {
		contact.Surname = *req.Surname
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Address != nil {
		contact.Address = *req.Address
	}
	if req.Company != nil {
		contact.Company = *req.Company
	}
	party.Stamp(caller.actor())

	if err := s.repo.Save(party); err != nil {
		return nil, internal("failed to save "+s.msgs.entity, err)
	}

	s.publish(caller, events.ActionUpdated, party)
	return party, nil
}

func (s *partyService[T, P]) Delete(caller *Caller, id uint) (string, error) {
	if err := s.repo.Delete(id); err != nil {
		return "", deleteErr(err, s.msgs.notFound)
	}
	s.events.Publish(events.New(events.TypeParty, s.msgs.entity, events.ActionDeleted, id, "", caller.eventActor()))
	return s.msgs.removed, nil
}

func (s *partyService[T, P]) publish(caller *Caller, action string, party P) {
	s.events.Publish(events.New(events.TypeParty, s.msgs.entity, action, party.GetID(), party.Contact().Email, caller.eventActor()))
}
