package service

import (
	"context"
	"strings"
	"time"

	"sales-core/internal/cart"
	"sales-core/internal/errs"
	"sales-core/internal/models"
	"sales-core/internal/store"
	"sales-core/internal/util"
	"sales-core/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TODO: replace with a real user identity once user management exists.
const defaultSalespersonID = "current_user"

const timestampLayout = "2006-01-02T15:04:05"

// OrderService turns validated carts into durable order records and
// keeps outlet credit exposure in step.
type OrderService struct {
	store  *store.Store
	logger *zap.Logger

	now func() time.Time
}

// NewOrderService creates an order service over the given record store.
func NewOrderService(store *store.Store) *OrderService {
	return &OrderService{
		store:  store,
		logger: util.GetLogger(),
		now:    time.Now,
	}
}

// ConfirmOrder runs the confirmation workflow: precondition checks in
// order (first failure aborts with no side effects), then order
// construction, persistence, and the outlet balance update.
//
// The order save and the outlet save are two separate writes, not one
// atomic transaction: a crash between them leaves the order persisted
// with a stale outlet balance. Known gap, inherited from the system
// this replaces.
func (s *OrderService) ConfirmOrder(ctx context.Context, c *cart.Cart) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ConfirmOrder")
	defer span.End()

	if c.IsEmpty() {
		util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, &errs.ValidationError{Message: "No items in order"}
	}
	if c.OutletID == "" {
		util.OrdersFailedTotal.WithLabelValues("no_outlet").Inc()
		return nil, &errs.ValidationError{Message: "Please select an outlet"}
	}

	outlets, err := s.store.LoadOutlets(ctx)
	if err != nil {
		return nil, err
	}

	outlet, found := outlets[c.OutletID]
	if !found {
		util.OrdersFailedTotal.WithLabelValues("invalid_outlet").Inc()
		return nil, errs.NewProcessing(errs.KindInvalidOutlet, "Outlet %s not found", c.OutletID)
	}
	if !outlet.IsActive {
		util.OrdersFailedTotal.WithLabelValues("invalid_outlet").Inc()
		return nil, errs.NewProcessing(errs.KindInvalidOutlet, "Outlet '%s' is not active", outlet.Name)
	}

	subtotal, discount, tax, total := c.Totals()

	if result := validate.CreditLimit(total, outlet.OutstandingAmount, outlet.CreditLimit); !result.OK {
		util.OrdersFailedTotal.WithLabelValues("credit_limit").Inc()
		return nil, errs.NewProcessing(errs.KindCreditLimitExceeded, "%s", result.Message)
	}

	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := models.Order{
		OrderID:        uuid.New().String(),
		OutletID:       outlet.OutletID,
		OutletName:     outlet.Name,
		SalespersonID:  defaultSalespersonID,
		Items:          c.SnapshotItems(),
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    total,
		Status:         models.OrderStatusConfirmed,
		CreatedDate:    now.Format(timestampLayout),
		Notes:          c.Notes,
	}

	orders[order.OrderID] = order
	if err := s.store.SaveOrders(ctx, orders); err != nil {
		util.OrdersFailedTotal.WithLabelValues("persistence").Inc()
		return nil, err
	}

	outlet.OutstandingAmount += total
	outlet.LastOrderDate = now.Format("2006-01-02")
	outlets[outlet.OutletID] = outlet
	if err := s.store.SaveOutlets(ctx, outlets); err != nil {
		util.OrdersFailedTotal.WithLabelValues("persistence").Inc()
		return nil, err
	}

	c.Clear()
	util.OrdersConfirmedTotal.Inc()
	s.logger.Info("Order confirmed",
		zap.String("order_id", order.OrderID),
		zap.String("outlet", outlet.Name),
		zap.Float64("total", total))

	return &order, nil
}

// AddToCart resolves a product by id, validates it against the current
// catalog and merges it into the session cart.
func (s *OrderService) AddToCart(ctx context.Context, c *cart.Cart, productID string, quantity int) error {
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return err
	}

	product, found := products[productID]
	if !found {
		return errs.NewProcessing(errs.KindInvalidProduct, "Product ID %s not found", productID)
	}

	if err := c.AddItem(product, quantity); err != nil {
		return err
	}
	util.CartItemsAddedTotal.Inc()
	return nil
}

// AddToCartByName resolves a product by (fuzzy) name, as interpreted
// text commands do, then adds it to the cart. A miss surfaces the
// name-lookup suggestions so the caller can ask for clarification.
func (s *OrderService) AddToCartByName(ctx context.Context, c *cart.Cart, productName string, quantity int) error {
	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return err
	}

	for id, product := range products {
		if strings.EqualFold(product.Name, productName) {
			if err := c.AddItem(products[id], quantity); err != nil {
				return err
			}
			util.CartItemsAddedTotal.Inc()
			return nil
		}
	}

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}
	result := validate.ProductName(productName, names)
	return &errs.ValidationError{Message: result.Message, Suggestions: result.Suggestions}
}

// SelectOutletByName resolves an outlet by (fuzzy) name and selects it
// on the cart.
func (s *OrderService) SelectOutletByName(ctx context.Context, c *cart.Cart, outletName string) error {
	outlets, err := s.store.LoadOutlets(ctx)
	if err != nil {
		return err
	}

	for id, outlet := range outlets {
		if strings.EqualFold(outlet.Name, outletName) && outlet.IsActive {
			c.OutletID = id
			return nil
		}
	}

	names := make([]string, 0, len(outlets))
	for _, outlet := range outlets {
		names = append(names, outlet.Name)
	}
	result := validate.OutletName(outletName, names)
	return &errs.ValidationError{Message: result.Message, Suggestions: result.Suggestions}
}

// GetOrder retrieves a persisted order by id.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}
	order, found := orders[orderID]
	if !found {
		return nil, &errs.ValidationError{Message: "Order " + orderID + " not found"}
	}
	return &order, nil
}

// ListOrders returns a snapshot of the full order collection.
func (s *OrderService) ListOrders(ctx context.Context) (map[string]models.Order, error) {
	return s.store.LoadOrders(ctx)
}
