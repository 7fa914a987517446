package models

// Product is a catalog entry. Created and edited outside this core;
// the core only reads it. Stock is advisory at add-time and is not
// decremented on confirmation.
type Product struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Size        string  `json:"size"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}

// Outlet is a customer storefront with its own credit limit and
// running balance. OutstandingAmount must not exceed CreditLimit as a
// result of a confirmed order; the check happens at confirmation time.
type Outlet struct {
	OutletID          string  `json:"outlet_id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	ContactPerson     string  `json:"contact_person"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email"`
	CreditLimit       float64 `json:"credit_limit"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	LastOrderDate     string  `json:"last_order_date,omitempty"`
	PerformanceRating float64 `json:"performance_rating"`
	IsActive          bool    `json:"is_active"`
}

// AvailableCredit returns the remaining credit exposure headroom.
func (o *Outlet) AvailableCredit() float64 {
	return o.CreditLimit - o.OutstandingAmount
}

// OrderItem is a confirmed order line. Product name, size, category and
// price are denormalized snapshots captured at add-time so historical
// orders stay stable if the Product record later changes.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Size        string  `json:"size"`
	Category    string  `json:"category"`
}

// Order statuses. Orders created by this core are born confirmed;
// draft, delivered and cancelled exist for externally managed records.
const (
	OrderStatusDraft     = "draft"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a durable business record, immutable once persisted.
// Invariants: TotalAmount = Subtotal - DiscountAmount + TaxAmount,
// Subtotal = sum of item TotalPrice.
type Order struct {
	OrderID        string      `json:"order_id"`
	OutletID       string      `json:"outlet_id"`
	OutletName     string      `json:"outlet_name"`
	SalespersonID  string      `json:"salesperson_id"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	DiscountAmount float64     `json:"discount_amount"`
	TaxAmount      float64     `json:"tax_amount"`
	TotalAmount    float64     `json:"total_amount"`
	Status         string      `json:"status"`
	CreatedDate    string      `json:"created_date"`
	DeliveryDate   string      `json:"delivery_date,omitempty"`
	Notes          string      `json:"notes,omitempty"`
}

// Promotion is a trade-promotion definition validated against a cart.
type Promotion struct {
	PromotionID        string   `json:"promotion_id"`
	Name               string   `json:"name"`
	MinQuantity        int      `json:"min_quantity"`
	MinAmount          float64  `json:"min_amount"`
	ApplicableProducts []string `json:"applicable_products"`
	IsActive           bool     `json:"is_active"`
}
