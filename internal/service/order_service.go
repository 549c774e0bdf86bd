package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
)

const (
	msgProductOrderCreated  = "The product order was created successfully."
	msgProductOrderUpdated  = "The product order was updated successfully."
	msgProductOrderRemoved  = "Product order information has been successfully removed."
	msgProductOrderNotFound = "Product order information could not be found."

	msgRawOrderCreated  = "The raw material order was created successfully."
	msgRawOrderUpdated  = "The raw material order was updated successfully."
	msgRawOrderRemoved  = "The raw material order information has been successfully removed."
	msgRawOrderNotFound = "The raw material order information could not be found."

	msgStatusChanged = "The order status was changed successfully."
	msgStatusSame    = "The status of the order is already the same."

	msgClientNotFound   = "Customer information could not be found."
	msgSupplierNotFound = "No supplier information was found."
	msgCreatorNotFound  = "The user placing the order was not found."
)

// OrderService manages sales and purchase orders together with the budget
// rows they produce.
type OrderService interface {
	ListProductOrders() ([]model.ProductOrder, error)
	CreateProductOrder(caller *Caller, req CreateProductOrderRequest) (*model.ProductOrder, string, error)
	UpdateProductOrder(caller *Caller, id uint, req UpdateProductOrderRequest) (*model.ProductOrder, string, error)
	DeleteProductOrder(caller *Caller, id uint) (string, error)

	ListRawOrders() ([]model.RawOrder, error)
	CreateRawOrder(caller *Caller, req CreateRawOrderRequest) (*model.RawOrder, string, error)
	UpdateRawOrder(caller *Caller, id uint, req UpdateRawOrderRequest) (*model.RawOrder, string, error)
	DeleteRawOrder(caller *Caller, id uint) (string, error)
}

// OrderInput holds the fields shared by both order kinds.
type OrderInput struct {
	UserEmail    string            `json:"user_email" validate:"required,email"`
	Quantity     decimal.Decimal   `json:"quantity" validate:"gt=0"`
	OrderTitle   string            `json:"order_title" validate:"notblank,max=255"`
	Status       model.OrderStatus `json:"status" validate:"omitempty,oneof=pending preparing shipped delivered cancelled"`
	DeliveryDate string            `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateProductOrderRequest struct {
	ClientEmail string `json:"client_email" validate:"required,email"`
	ProductName string `json:"product_name" validate:"notblank"`
	OrderInput
}

type CreateRawOrderRequest struct {
	SupplierEmail string `json:"supplier_email" validate:"required,email"`
	RawName       string `json:"raw_name" validate:"notblank"`
	OrderInput
}

// OrderPatch holds the optional fields shared by both order kinds. An empty
// delivery_date clears the date.
type OrderPatch struct {
	UserEmail    *string            `json:"user_email" validate:"omitempty,email"`
	Quantity     *decimal.Decimal   `json:"quantity" validate:"omitempty,gt=0"`
	OrderTitle   *string            `json:"order_title" validate:"omitempty,notblank,max=255"`
	Status       *model.OrderStatus `json:"status" validate:"omitempty,oneof=pending preparing shipped delivered cancelled"`
	DeliveryDate *string            `json:"delivery_date" validate:"omitempty,date_or_empty"`
}

type UpdateProductOrderRequest struct {
	ClientEmail *string `json:"client_email" validate:"omitempty,email"`
	ProductName *string `json:"product_name" validate:"omitempty,notblank"`
	OrderPatch
}

type UpdateRawOrderRequest struct {
	SupplierEmail *string `json:"supplier_email" validate:"omitempty,email"`
	RawName       *string `json:"raw_name" validate:"omitempty,notblank"`
	OrderPatch
}

type orderService struct {
	repos  *repository.Repositories
	events events.Publisher
}

func NewOrderService(repos *repository.Repositories, publisher events.Publisher) OrderService {
	return &orderService{repos: repos, events: publisher}
}

func (s *orderService) publish(caller *Caller, entity, action string, id uint, title string) {
	s.events.Publish(events.New(events.TypeOrder, entity, action, id, title, caller.eventActor()))
}

// budgetAmount is the ledger value of an order line.
func budgetAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

func parseDate(value string) *datatypes.Date {
	if value == "" {
		return nil
	}
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		// Already checked by the date validation tags
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

// fields builds the shared order columns once the creator is resolved.
func (in OrderInput) fields(userID uint) model.OrderFields {
	status := in.Status
	if status == "" {
		status = model.OrderPending
	}
	return model.OrderFields{
		OrderTitle:   in.OrderTitle,
		Status:       status,
		Quantity:     in.Quantity,
		DeliveryDate: parseDate(in.DeliveryDate),
		UserID:       userID,
	}
}

// apply copies the supplied fields onto o and reports whether the quantity changed.
func (p OrderPatch) apply(o *model.OrderFields, repos *repository.Repositories) (bool, error) {
	if p.UserEmail != nil {
		user, err := repos.Users.FindByEmail(*p.UserEmail)
		if err != nil {
			return false, lookupErr(err, msgCreatorNotFound)
		}
		o.UserID = user.ID
	}
	quantityChanged := false
	if p.Quantity != nil && !p.Quantity.Equal(o.Quantity) {
		o.Quantity = *p.Quantity
		quantityChanged = true
	}
	if p.OrderTitle != nil {
		o.OrderTitle = *p.OrderTitle
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = parseDate(*p.DeliveryDate)
	}
	return quantityChanged, nil
}

// ---- product orders ----

func (s *orderService) ListProductOrders() ([]model.ProductOrder, error) {
	orders, err := s.repos.ProductOrders.FindAll()
	if err != nil {
		return nil, internal("failed to list product orders", err)
	}
	return orders, nil
}

func (s *orderService) CreateProductOrder(caller *Caller, req CreateProductOrderRequest) (*model.ProductOrder, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	client, err := s.repos.Clients.FindByEmail(req.ClientEmail)
	if err != nil {
		return nil, "", lookupErr(err, msgClientNotFound)
	}
	user, err := s.repos.Users.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, "", lookupErr(err, msgCreatorNotFound)
	}
	product, err := s.repos.Products.FindByName(req.ProductName)
	if err != nil {
		return nil, "", lookupErr(err, msgProductNotFound)
	}

	order := &model.ProductOrder{
		OrderFields: req.fields(user.ID),
		ClientID:    client.ID,
		ProductID:   product.ID,
	}
	order.Stamp(caller.actor())

	// A sale is income: the order and its ledger row are written together
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.ProductOrders.Create(order); err != nil {
			return err
		}
		return tx.Budgets.Create(&model.Budget{
			ProductOrderID: &order.ID,
			Amount:         budgetAmount(order.Quantity, product.UnitPrice),
		})
	})
	if err != nil {
		return nil, "", internal("failed to save product order", err)
	}

	created, err := s.repos.ProductOrders.FindByID(order.ID)
	if err != nil {
		return nil, "", internal("failed to reload product order", err)
	}
	s.publish(caller, "product_order", events.ActionCreated, created.ID, created.OrderTitle)
	return created, msgProductOrderCreated, nil
}

func (s *orderService) UpdateProductOrder(caller *Caller, id uint, req UpdateProductOrderRequest) (*model.ProductOrder, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		order, err := tx.ProductOrders.FindByIDForUpdate(id)
		if err != nil {
			return lookupErr(err, msgProductOrderNotFound)
		}

		if req.ClientEmail != nil {
			client, err := tx.Clients.FindByEmail(*req.ClientEmail)
			if err != nil {
				return lookupErr(err, msgClientNotFound)
			}
			order.ClientID = client.ID
		}
		itemChanged := false
		if req.ProductName != nil {
			product, err := tx.Products.FindByName(*req.ProductName)
			if err != nil {
				return lookupErr(err, msgProductNotFound)
			}
			itemChanged = product.ID != order.ProductID
			order.ProductID = product.ID
		}
		quantityChanged, err := req.apply(&order.OrderFields, tx)
		if err != nil {
			return err
		}
		order.Stamp(caller.actor())

		if err := tx.ProductOrders.Save(order); err != nil {
			return internal("failed to save product order", err)
		}
		if !itemChanged && !quantityChanged {
			return nil
		}

		product, err := tx.Products.FindByID(order.ProductID)
		if err != nil {
			return internal("failed to load ordered product", err)
		}
		return s.rebudget(tx, &model.Budget{ProductOrderID: &order.ID}, budgetAmount(order.Quantity, product.UnitPrice))
	})
	if err != nil {
		return nil, "", asServiceErr(err, "failed to update product order")
	}

	updated, err := s.repos.ProductOrders.FindByID(id)
	if err != nil {
		return nil, "", internal("failed to reload product order", err)
	}
	s.publish(caller, "product_order", events.ActionUpdated, updated.ID, updated.OrderTitle)
	return updated, msgProductOrderUpdated, nil
}

func (s *orderService) DeleteProductOrder(caller *Caller, id uint) (string, error) {
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Budgets.DeleteByProductOrder(id); err != nil {
			return err
		}
		return tx.ProductOrders.Delete(id)
	})
	if err != nil {
		return "", deleteErr(err, msgProductOrderNotFound)
	}
	s.publish(caller, "product_order", events.ActionDeleted, id, "")
	return msgProductOrderRemoved, nil
}

// ---- raw orders ----

func (s *orderService) ListRawOrders() ([]model.RawOrder, error) {
	orders, err := s.repos.RawOrders.FindAll()
	if err != nil {
		return nil, internal("failed to list raw material orders", err)
	}
	return orders, nil
}

func (s *orderService) CreateRawOrder(caller *Caller, req CreateRawOrderRequest) (*model.RawOrder, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	supplier, err := s.repos.Suppliers.FindByEmail(req.SupplierEmail)
	if err != nil {
		return nil, "", lookupErr(err, msgSupplierNotFound)
	}
	user, err := s.repos.Users.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, "", lookupErr(err, msgCreatorNotFound)
	}
	raw, err := s.repos.Raws.FindByName(req.RawName)
	if err != nil {
		return nil, "", lookupErr(err, msgRawNotFound)
	}

	order := &model.RawOrder{
		OrderFields: req.fields(user.ID),
		SupplierID:  supplier.ID,
		RawID:       raw.ID,
	}
	order.Stamp(caller.actor())

	// A purchase is outcome
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.RawOrders.Create(order); err != nil {
			return err
		}
		return tx.Budgets.Create(&model.Budget{
			RawOrderID: &order.ID,
			Amount:     budgetAmount(order.Quantity, raw.UnitPrice),
		})
	})
	if err != nil {
		return nil, "", internal("failed to save raw material order", err)
	}

	created, err := s.repos.RawOrders.FindByID(order.ID)
	if err != nil {
		return nil, "", internal("failed to reload raw material order", err)
	}
	s.publish(caller, "raw_order", events.ActionCreated, created.ID, created.OrderTitle)
	return created, msgRawOrderCreated, nil
}

// UpdateRawOrder refuses to set a status the order already has.
func (s *orderService) UpdateRawOrder(caller *Caller, id uint, req UpdateRawOrderRequest) (*model.RawOrder, string, error) {
	if err := validate(&req); err != nil {
		return nil, "", err
	}

	statusChanged := false
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		order, err := tx.RawOrders.FindByIDForUpdate(id)
		if err != nil {
			return lookupErr(err, msgRawOrderNotFound)
		}
		if req.Status != nil {
			if *req.Status == order.Status {
				return forbidden(msgStatusSame)
			}
			statusChanged = true
		}

		if req.SupplierEmail != nil {
			supplier, err := tx.Suppliers.FindByEmail(*req.SupplierEmail)
			if err != nil {
				return lookupErr(err, msgSupplierNotFound)
			}
			order.SupplierID = supplier.ID
		}
		itemChanged := false
		if req.RawName != nil {
			raw, err := tx.Raws.FindByName(*req.RawName)
			if err != nil {
				return lookupErr(err, msgRawNotFound)
			}
			itemChanged = raw.ID != order.RawID
			order.RawID = raw.ID
		}
		quantityChanged, err := req.apply(&order.OrderFields, tx)
		if err != nil {
			return err
		}
		order.Stamp(caller.actor())

		if err := tx.RawOrders.Save(order); err != nil {
			return internal("failed to save raw material order", err)
		}
		if !itemChanged && !quantityChanged {
			return nil
		}

		raw, err := tx.Raws.FindByID(order.RawID)
		if err != nil {
			return internal("failed to load ordered raw material", err)
		}
		return s.rebudget(tx, &model.Budget{RawOrderID: &order.ID}, budgetAmount(order.Quantity, raw.UnitPrice))
	})
	if err != nil {
		return nil, "", asServiceErr(err, "failed to update raw material order")
	}

	updated, err := s.repos.RawOrders.FindByID(id)
	if err != nil {
		return nil, "", internal("failed to reload raw material order", err)
	}
	s.publish(caller, "raw_order", events.ActionUpdated, updated.ID, updated.OrderTitle)
	if statusChanged {
		return updated, msgStatusChanged, nil
	}
	return updated, msgRawOrderUpdated, nil
}

func (s *orderService) DeleteRawOrder(caller *Caller, id uint) (string, error) {
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Budgets.DeleteByRawOrder(id); err != nil {
			return err
		}
		return tx.RawOrders.Delete(id)
	})
	if err != nil {
		return "", deleteErr(err, msgRawOrderNotFound)
	}
	s.publish(caller, "raw_order", events.ActionDeleted, id, "")
	return msgRawOrderRemoved, nil
}

// rebudget sets the amount of the ledger row linked like row, creating it
// when the order has none yet.
func (s *orderService) rebudget(tx *repository.Repositories, row *model.Budget, amount decimal.Decimal) error {
	var existing *model.Budget
	var err error
	if row.ProductOrderID != nil {
		existing, err = tx.Budgets.FindByProductOrder(*row.ProductOrderID)
	} else {
		existing, err = tx.Budgets.FindByRawOrder(*row.RawOrderID)
	}

	switch {
	case err == nil:
		existing.Amount = amount
		err = tx.Budgets.Save(existing)
	case isNotFound(err):
		row.Amount = amount
		err = tx.Budgets.Create(row)
	}
	if err != nil {
		return internal("failed to update budget", err)
	}
	return nil
}
