package service

import (
	"github.com/shopspring/decimal"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

const (
	msgProductExists        = "The product already exists."
	msgProductCreated       = "The product has been successfully created."
	msgProductRemoved       = "The product has been successfully removed."
	msgProductNotFound      = "The product was not found."
	msgProductStockNotFound = "Product repository not found."

	msgRawExists        = "The raw material already exists."
	msgRawCreated       = "The raw material was successfully created."
	msgRawRemoved       = "The raw material was successfully removed."
	msgRawNotFound      = "The raw material was not found."
	msgRawStockNotFound = "The raw material store was not found."

	msgRecipeQuantity = "Enter the amount of product correctly."
	msgRecipeCreated  = "The product raw material requirement scheme has been successfully created."
	msgRecipeRemoved  = "The product raw material requirement scheme has been successfully removed."
	msgRecipeNotFound = "Product raw material requirement scheme was not found."

	msgAttrCreated = "The product attribute has been successfully created."
)

// CatalogService manages products, raw materials, their recipes and
// product attributes.
type CatalogService interface {
	ListProducts(name string) ([]model.Product, error)
	CreateProduct(caller *Caller, req CreateProductRequest) (*model.Product, string, error)
	UpdateProduct(caller *Caller, id uint, req UpdateProductRequest) (*model.Product, error)
	DeleteProduct(caller *Caller, id uint) (string, error)

	ListRaws(name string) ([]model.Raw, error)
	CreateRaw(caller *Caller, req CreateRawRequest) (*model.Raw, string, error)
	UpdateRaw(caller *Caller, id uint, req UpdateRawRequest) (*model.Raw, error)
	DeleteRaw(caller *Caller, id uint) (string, error)

	ListRecipes(productName string) ([]model.RawForProduction, error)
	CreateRecipe(caller *Caller, req CreateRecipeRequest) (*model.RawForProduction, string, error)
	UpdateRecipe(caller *Caller, id uint, req UpdateRecipeRequest) (*model.RawForProduction, error)
	DeleteRecipe(caller *Caller, id uint) (string, error)

	AddAttribute(caller *Caller, req AttributeRequest) (*model.ProductAttr, string, error)
}

type AttributeInput struct {
	Name  string `json:"name" validate:"notblank,max=100"`
	Value string `json:"value" validate:"max=500"`
}

type CreateProductRequest struct {
	StockName string           `json:"product_stock_name" validate:"notblank"`
	Name      string           `json:"product_name" validate:"notblank,max=150"`
	UnitPrice decimal.Decimal  `json:"unit_price" validate:"gte=0"`
	Amount    *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Attrs     []AttributeInput `json:"product_attr" validate:"dive"`
}

type UpdateProductRequest struct {
	StockName *string          `json:"product_stock_name" validate:"omitempty,notblank"`
	Name      *string          `json:"name" validate:"omitempty,notblank,max=150"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"`
	Amount    *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
}

type CreateRawRequest struct {
	StockName string           `json:"raw_stock_name" validate:"notblank"`
	Name      string           `json:"raw_name" validate:"notblank,max=150"`
	UnitPrice decimal.Decimal  `json:"unit_price" validate:"gte=0"`
	Amount    *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
}

type UpdateRawRequest struct {
	StockName *string          `json:"raw_stock_name" validate:"omitempty,notblank"`
	Name      *string          `json:"name" validate:"omitempty,notblank,max=150"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"`
	Amount    *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
}

type CreateRecipeRequest struct {
	RawName     string `json:"raw_name" validate:"notblank"`
	ProductName string `json:"product_name" validate:"notblank"`
	Quantity    int    `json:"quantity"`
}

type UpdateRecipeRequest struct {
	RawName         *string `json:"raw_name" validate:"omitempty,notblank"`
	ProductName     *string `json:"product_name" validate:"omitempty,notblank"`
	QuantityForProd *int    `json:"quantity_for_prod" validate:"omitempty,gt=0"`
}

type AttributeRequest struct {
	ProductName string `json:"product_name" validate:"notblank"`
	AttributeInput
}

type catalogService struct {
	repos  *repository.Repositories
	events events.Publisher
}

func NewCatalogService(repos *repository.Repositories, publisher events.Publisher) CatalogService {
	return &catalogService{repos: repos, events: publisher}
}

func (s *catalogService) publish(caller *Caller, entity, action string, id uint, name string) {
	s.events.Publish(events.New(events.TypeInventory, entity, action, id, name, caller.eventActor()))
}

// ---- products ----

func (s *catalogService) ListProducts(name string) ([]model.Product, error) {
	var scopes []repository.Scope
	if name != "" {
		scopes = append(scopes, repository.ByColumn("name", name))
	}
	products, err := s.repos.Products.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list products", err)
	}
	return products, nil
}

func (s *catalogService) CreateProduct(caller *Caller, req CreateProductRequest) (*model.Product, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	stock, err := s.repos.ProductStocks.FindByName(req.StockName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductStockNotFound)
	}
	if _, err := s.repos.Products.FindByName(req.Name); err == nil {
		return nil, "", conflict(msgProductExists)
	} else if !isNotFound(err) {
		return nil, "", internal("failed to look up product", err)
	}

	product := &model.Product{
		StockID:   stock.ID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Amount:    decimal.NewFromInt(1),
	}
	if req.Amount != nil {
		product.Amount = *req.Amount
	}
	product.Stamp(caller.actor())

	// Product and its inline attributes land together or not at all
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Products.Create(product); err != nil {
			return err
		}
		for _, a := range req.Attrs {
			attr := &model.ProductAttr{ProductID: product.ID, Name: a.Name, Value: a.Value}
			if err := tx.ProductAttrs.Create(attr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", writeErr(err, msgProductExists)
	}

	created, err := s.repos.Products.FindByID(product.ID)
	if err != nil {
		return nil, "", internal("failed to reload product", err)
	}
	s.publish(caller, "product", events.ActionCreated, created.ID, created.Name)
	return created, msgProductCreated, nil
}

func (s *catalogService) UpdateProduct(caller *Caller, id uint, req UpdateProductRequest) (*model.Product, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	product, err := s.repos.Products.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, msgProductNotFound)
	}
	if req.StockName != nil {
		stock, err := s.repos.ProductStocks.FindByName(*req.StockName)
		if err != nil {
			return nil, lookupErr(err, msgProductStockNotFound)
		}
		product.StockID = stock.ID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.Amount != nil {
		product.Amount = *req.Amount
	}
	product.Stamp(caller.actor())

	if err := s.repos.Products.Save(product); err != nil {
		return nil, writeErr(err, msgProductExists)
	}

	updated, err := s.repos.Products.FindByID(id)
	if err != nil {
		return nil, internal("failed to reload product", err)
	}
	s.publish(caller, "product", events.ActionUpdated, updated.ID, updated.Name)
	return updated, nil
}

func (s *catalogService) DeleteProduct(caller *Caller, id uint) (string, error) {
	if err := s.repos.Products.Delete(id); err != nil {
		return "", deleteErr(err, msgProductNotFound)
	}
	s.publish(caller, "product", events.ActionDeleted, id, "")
	return msgProductRemoved, nil
}

// ---- raw materials ----

func (s *catalogService) ListRaws(name string) ([]model.Raw, error) {
	var scopes []repository.Scope
	if name != "" {
		scopes = append(scopes, repository.ByColumn("name", name))
	}
	raws, err := s.repos.Raws.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list raw materials", err)
	}
	return raws, nil
}

func (s *catalogService) CreateRaw(caller *Caller, req CreateRawRequest) (*model.Raw, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	// Resolve the stock first: a missing stock must leave no raw row behind
	stock, err := s.repos.RawStocks.FindByName(req.StockName)
	if err != nil {
		return nil, "", lookupErr(err, msgRawStockNotFound)
	}
	if _, err := s.repos.Raws.FindByName(req.Name); err == nil {
		return nil, "", conflict(msgRawExists)
	} else if !isNotFound(err) {
		return nil, "", internal("failed to look up raw material", err)
	}

	raw := &model.Raw{
		StockID:   stock.ID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Amount:    decimal.Zero,
	}
	if req.Amount != nil {
		raw.Amount = *req.Amount
	}
	raw.Stamp(caller.actor())
	if err := s.repos.Raws.Create(raw); err != nil {
		return nil, "", writeErr(err, msgRawExists)
	}

	created, err := s.repos.Raws.FindByID(raw.ID)
	if err != nil {
		return nil, "", internal("failed to reload raw material", err)
	}
	s.publish(caller, "raw", events.ActionCreated, created.ID, created.Name)
	return created, msgRawCreated, nil
}

func (s *catalogService) UpdateRaw(caller *Caller, id uint, req UpdateRawRequest) (*model.Raw, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	raw, err := s.repos.Raws.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, msgRawNotFound)
	}
	if req.StockName != nil {
		stock, err := s.repos.RawStocks.FindByName(*req.StockName)
		if err != nil {
			return nil, lookupErr(err, msgRawStockNotFound)
		}
		raw.StockID = stock.ID
	}
	if req.Name != nil {
		raw.Name = *req.Name
	}
	if req.UnitPrice != nil {
		raw.UnitPrice = *req.UnitPrice
	}
	if req.Amount != nil {
		raw.Amount = *req.Amount
	}
	raw.Stamp(caller.actor())

	if err := s.repos.Raws.Save(raw); err != nil {
		return nil, writeErr(err, msgRawExists)
	}

	updated, err := s.repos.Raws.FindByID(id)
	if err != nil {
		return nil, internal("failed to reload raw material", err)
	}
	s.publish(caller, "raw", events.ActionUpdated, updated.ID, updated.Name)
	return updated, nil
}

func (s *catalogService) DeleteRaw(caller *Caller, id uint) (string, error) {
	if err := s.repos.Raws.Delete(id); err != nil {
		return "", deleteErr(err, msgRawNotFound)
	}
	s.publish(caller, "raw", events.ActionDeleted, id, "")
	return msgRawRemoved, nil
}

// ---- recipes ----

// ListRecipes returns every recipe row, or only those of productName when set.
func (s *catalogService) ListRecipes(productName string) ([]model.RawForProduction, error) {
	var scopes []repository.Scope
	if productName != "" {
		product, err := s.repos.Products.FindByName(productName)
		if err != nil {
			return nil, lookupErr(err, msgProductNotFound)
		}
		scopes = append(scopes, repository.ByColumn("product_id", product.ID))
	}
	recipes, err := s.repos.Recipes.FindAll(scopes...)
	if err != nil {
		return nil, internal("failed to list recipes", err)
	}
	return recipes, nil
}

func (s *catalogService) CreateRecipe(caller *Caller, req CreateRecipeRequest) (*model.RawForProduction, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}
	if req.Quantity <= 0 {
		return nil, "", invalid(msgRecipeQuantity)
	}

	raw, err := s.repos.Raws.FindByName(req.RawName)
	if err != nil {
		return nil, "", lookupErr(err, msgRawNotFound)
	}
	product, err := s.repos.Products.FindByName(req.ProductName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductNotFound)
	}

	recipe := &model.RawForProduction{
		ProductID:       product.ID,
		RawID:           raw.ID,
		QuantityForProd: req.Quantity,
	}
	recipe.Stamp(caller.actor())
	if err := s.repos.Recipes.Create(recipe); err != nil {
		return nil, "", internal("failed to save recipe", err)
	}

	created, err := s.repos.Recipes.FindByID(recipe.ID)
	if err != nil {
		return nil, "", internal("failed to reload recipe", err)
	}
	s.publish(caller, "recipe", events.ActionCreated, created.ID, product.Name)
	return created, msgRecipeCreated, nil
}

func (s *catalogService) UpdateRecipe(caller *Caller, id uint, req UpdateRecipeRequest) (*model.RawForProduction, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	recipe, err := s.repos.Recipes.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, msgRecipeNotFound)
	}
	if req.RawName != nil {
		raw, err := s.repos.Raws.FindByName(*req.RawName)
		if err != nil {
			return nil, lookupErr(err, msgRawNotFound)
		}
		recipe.RawID = raw.ID
	}
	if req.ProductName != nil {
		product, err := s.repos.Products.FindByName(*req.ProductName)
		if err != nil {
			return nil, lookupErr(err, msgProductNotFound)
		}
		recipe.ProductID = product.ID
	}
	if req.QuantityForProd != nil {
		recipe.QuantityForProd = *req.QuantityForProd
	}
	recipe.Stamp(caller.actor())

	if err := s.repos.Recipes.Save(recipe); err != nil {
		return nil, internal("failed to save recipe", err)
	}

	updated, err := s.repos.Recipes.FindByID(id)
	if err != nil {
		return nil, internal("failed to reload recipe", err)
	}
	s.publish(caller, "recipe", events.ActionUpdated, updated.ID, updated.Product.Name)
	return updated, nil
}

func (s *catalogService) DeleteRecipe(caller *Caller, id uint) (string, error) {
	if err := s.repos.Recipes.Delete(id); err != nil {
		return "", deleteErr(err, msgRecipeNotFound)
	}
	s.publish(caller, "recipe", events.ActionDeleted, id, "")
	return msgRecipeRemoved, nil
}

// ---- attributes ----

func (s *catalogService) AddAttribute(caller *Caller, req AttributeRequest) (*model.ProductAttr, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	product, err := s.repos.Products.FindByName(req.ProductName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductNotFound)
	}

	attr := &model.ProductAttr{ProductID: product.ID, Name: req.Name, Value: req.Value}
	if err := s.repos.ProductAttrs.Create(attr); err != nil {
		return nil, "", internal("failed to save attribute", err)
	}

	s.publish(caller, "product_attr", events.ActionCreated, attr.ID, attr.Name)
	return attr, msgAttrCreated, nil
}
