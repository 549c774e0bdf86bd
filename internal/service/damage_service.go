package service

import (
	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

const (
	msgDamagedProductCreated  = "The damaged product was successfully created."
	msgDamagedProductUpdated  = "The damaged product was successfully updated."
	msgDamagedProductRemoved  = "The damaged product has been successfully removed."
	msgDamagedProductNotFound = "Damaged product could not be found."

	msgDamagedRawCreated  = "The damaged raw material was successfully created."
	msgDamagedRawUpdated  = "The damaged raw material was successfully updated."
	msgDamagedRawRemoved  = "The damaged raw material was successfully removed."
	msgDamagedRawNotFound = "Damaged raw material not found."
)

// DamageService keeps the damaged goods log. Records carry no quantity or
// reason, only the item and when it was reported.
type DamageService interface {
	ListDamagedProducts(productName string) ([]model.DamagedProduct, error)
	LogProductDamage(caller *Caller, req DamagedProductRequest) (*model.DamagedProduct, string, error)
	UpdateDamagedProduct(caller *Caller, id uint, req DamagedProductRequest) (*model.DamagedProduct, string, error)
	DeleteDamagedProduct(caller *Caller, id uint) (string, error)

	ListDamagedRaws(rawName string) ([]model.DamagedRaw, error)
	LogRawDamage(caller *Caller, req DamagedRawRequest) (*model.DamagedRaw, string, error)
	UpdateDamagedRaw(caller *Caller, id uint, req DamagedRawRequest) (*model.DamagedRaw, string, error)
	DeleteDamagedRaw(caller *Caller, id uint) (string, error)
}

type DamagedProductRequest struct {
	ProductName string `json:"product_name" validate:"notblank"`
}

type DamagedRawRequest struct {
	RawName string `json:"raw_name" validate:"notblank"`
}

type damageService struct {
	repos  *repository.Repositories
	events events.Publisher
}

func NewDamageService(repos *repository.Repositories, publisher events.Publisher) DamageService {
	return &damageService{repos: repos, events: publisher}
}

func (s *damageService) publish(caller *Caller, entity, action string, id uint, name string) {
	s.events.Publish(events.New(events.TypeInventory, entity, action, id, name, caller.eventActor()))
}

func (s *damageService) ListDamagedProducts(productName string) ([]model.DamagedProduct, error) {
	var scopes []repository.Scope
	if productName != "" {
		product, err := s.repos.Products.FindByName(productName)
		if err != nil {
			return nil, lookupErr(err, msgProductNotFound)
		}
		scopes = append(scopes, repository.ByColumn("product_id", product.ID))
	}
	damaged, err := s.repos.DamagedProducts.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list damaged products", err)
	}
	return damaged, nil
}

func (s *damageService) LogProductDamage(caller *Caller, req DamagedProductRequest) (*model.DamagedProduct, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}
	product, err := s.repos.Products.FindByName(req.ProductName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductNotFound)
	}

	damaged := &model.DamagedProduct{ProductID: product.ID}
	damaged.Stamp(caller.actor())
	if err := s.repos.DamagedProducts.Create(damaged); err != nil {
		return nil, "", internal("failed to save damaged product", err)
	}
	damaged.Product = *product

	s.publish(caller, "damaged_product", events.ActionCreated, damaged.ID, product.Name)
	return damaged, msgDamagedProductCreated, nil
}

// UpdateDamagedProduct moves a record to another product.
func (s *damageService) UpdateDamagedProduct(caller *Caller, id uint, req DamagedProductRequest) (*model.DamagedProduct, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}
	damaged, err := s.repos.DamagedProducts.FindByID(id)
	if err != nil {
		return nil, "", lookupErr(err, msgDamagedProductNotFound)
	}
	product, err := s.repos.Products.FindByName(req.ProductName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductNotFound)
	}

	damaged.ProductID = product.ID
	damaged.Stamp(caller.actor())
	if err := s.repos.DamagedProducts.Save(damaged); err != nil {
		return nil, "", internal("failed to save damaged product", err)
	}
	damaged.Product = *product

	s.publish(caller, "damaged_product", events.ActionUpdated, damaged.ID, product.Name)
	return damaged, msgDamagedProductUpdated, nil
}

func (s *damageService) DeleteDamagedProduct(caller *Caller, id uint) (string, error) {
	if err := s.repos.DamagedProducts.Delete(id); err != nil {
		return "", deleteErr(err, msgDamagedProductNotFound)
	}
	s.publish(caller, "damaged_product", events.ActionDeleted, id, "")
	return msgDamagedProductRemoved, nil
}

func (s *damageService) ListDamagedRaws(rawName string) ([]model.DamagedRaw, error) {
	var scopes []repository.Scope
	if rawName != "" {
		raw, err := s.repos.Raws.FindByName(rawName)
		if err != nil {
			return nil, lookupErr(err, msgRawNotFound)
		}
		scopes = append(scopes, repository.ByColumn("raw_id", raw.ID))
	}
	damaged, err := s.repos.DamagedRaws.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list damaged raw materials", err)
	}
	return damaged, nil
}

func (s *damageService) LogRawDamage(caller *Caller, req DamagedRawRequest) (*model.DamagedRaw, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}
	raw, err := s.repos.Raws.FindByName(req.RawName)
	if err != nil {
		return nil, "", lookupErr(err, msgRawNotFound)
	}

	damaged := &model.DamagedRaw{RawID: raw.ID}
	damaged.Stamp(caller.actor())
	if err := s.repos.DamagedRaws.Create(damaged); err != nil {
		return nil, "", internal("failed to save damaged raw material", err)
	}
	damaged.Raw = *raw

	s.publish(caller, "damaged_raw", events.ActionCreated, damaged.ID, raw.Name)
	return damaged, msgDamagedRawCreated, nil
}

func (s *damageService) UpdateDamagedRaw(caller *Caller, id uint, req DamagedRawRequest) (*model.DamagedRaw, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}
	damaged, err := s.repos.DamagedRaws.FindByID(id)
	if err != nil {
		return nil, "", lookupErr(err, msgDamagedRawNotFound)
	}
	raw, err := s.repos.Raws.FindByName(req.RawName)
	if err != nil {
		return nil, "", lookupErr(err, msgRawNotFound)
	}

	damaged.RawID = raw.ID
	damaged.Stamp(caller.actor())
	if err := s.repos.DamagedRaws.Save(damaged); err != nil {
		return nil, "", internal("failed to save damaged raw material", err)
	}
	damaged.Raw = *raw

	s.publish(caller, "damaged_raw", events.ActionUpdated, damaged.ID, raw.Name)
	return damaged, msgDamagedRawUpdated, nil
}

func (s *damageService) DeleteDamagedRaw(caller *Caller, id uint) (string, error) {
	if err := s.repos.DamagedRaws.Delete(id); err != nil {
		return "", deleteErr(err, msgDamagedRawNotFound)
	}
	s.publish(caller, "damaged_raw", events.ActionDeleted, id, "")
	return msgDamagedRawRemoved, nil
}
