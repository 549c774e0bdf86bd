package service

import (
	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

// StockRequest carries a stock name; handlers fill it from the create or
// update body.
type StockRequest struct {
	Name string `json:"name" validate:"notblank,max=150"`
}

type StockService[T any] interface {
	List() ([]T, error)
	Create(caller *Caller, req StockRequest) (*T, string, error)
	Update(caller *Caller, id uint, req StockRequest) (*T, error)
	Delete(caller *Caller, id uint) (string, error)
}

// stockRow is satisfied by *model.ProductStock and *model.RawStock.
type stockRow[T any] interface {
	*T
	Stamp(actor string)
	Rename(name string)
	Ref() model.Ref
}

// stockMessages holds the user facing texts of one stock kind.
type stockMessages struct {
	entity   string
	exists   string
	created  string
	removed  string
	notFound string
}

type stockService[T any, P stockRow[T]] struct {
	repo   repository.Named[T]
	msgs   stockMessages
	events events.Publisher
}

func NewProductStockService(repos *repository.Repositories, publisher events.Publisher) StockService[model.ProductStock] {
	return &stockService[model.ProductStock, *model.ProductStock]{
		repo: repos.ProductStocks,
		msgs: stockMessages{
			entity:   "product_stock",
			exists:   "The product stock already exists.",
			created:  "The product repository has been successfully created.",
			removed:  "The product repository has been successfully removed.",
			notFound: "Product repository not found.",
		},
		events: publisher,
	}
}

func NewRawStockService(repos *repository.Repositories, publisher events.Publisher) StockService[model.RawStock] {
	return &stockService[model.RawStock, *model.RawStock]{
		repo: repos.RawStocks,
		msgs: stockMessages{
			entity:   "raw_stock",
			exists:   "The raw material warehouse already exists.",
			created:  "The raw material warehouse has been successfully created.",
			removed:  "The raw material store has been successfully removed.",
			notFound: "Raw material warehouse not found.",
		},
		events: publisher,
	}
}

func (s *stockService[T, P]) List() ([]T, error) {
	stocks, err := s.repo.FindAll()
	if err != nil {
		return nil, internal("failed to list stocks", err)
	}
	return stocks, nil
}

// Create is get-or-create by name: an existing name is a conflict and
// nothing is written.
func (s *stockService[T, P]) Create(caller *Caller, req StockRequest) (*T, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, "", conflict(s.msgs.exists)
	} else if !isNotFound(err) {
		return nil, "", internal("failed to look up stock", err)
	}

	stock := P(new(T))
	stock.Rename(req.Name)
	stock.Stamp(caller.actor())
	if err := s.repo.Create(stock); err != nil {
		return nil, "", writeErr(err, s.msgs.exists)
	}

	s.publish(caller, events.ActionCreated, stock.Ref())
	return stock, s.msgs.created, nil
}

func (s *stockService[T, P]) Update(caller *Caller, id uint, req StockRequest) (*T, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	found, err := s.repo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, s.msgs.notFound)
	}
	stock := P(found)
	stock.Rename(req.Name)
	stock.Stamp(caller.actor())
	if err := s.repo.Save(stock); err != nil {
		return nil, writeErr(err, s.msgs.exists)
	}

	s.publish(caller, events.ActionUpdated, stock.Ref())
	return stock, nil
}

func (s *stockService[T, P]) Delete(caller *Caller, id uint) (string, error) {
	if err := s.repo.Delete(id); err != nil {
		return "", deleteErr(err, s.msgs.notFound)
	}
	s.publish(caller, events.ActionDeleted, model.Ref{ID: id})
	return s.msgs.removed, nil
}

func (s *stockService[T, P]) publish(caller *Caller, action string, ref model.Ref) {
	s.events.Publish(events.New(events.TypeInventory, s.msgs.entity, action, ref.ID, ref.Name, caller.eventActor()))
}
