package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sales-core/internal/command"
	"sales-core/internal/errs"
	"sales-core/internal/service"
	"sales-core/internal/store"
	"sales-core/internal/util"
	"sales-core/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionHeader = "X-Session-ID"

// Handler exposes the order core over HTTP. It is a thin shim: all
// business rules live in the core packages it calls into.
type Handler struct {
	orderService    *service.OrderService
	store           *store.Store
	sessions        *SessionManager
	lowStockDefault int
}

// NewHandler creates an HTTP handler over the core services.
func NewHandler(orderService *service.OrderService, st *store.Store, sessions *SessionManager, lowStockDefault int) *Handler {
	return &Handler{
		orderService:    orderService,
		store:           st,
		sessions:        sessions,
		lowStockDefault: lowStockDefault,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/search", h.searchProducts)
		v1.GET("/products/low-stock", h.lowStockProducts)
		v1.GET("/outlets", h.listOutlets)
		v1.GET("/orders", h.listOrders)
		v1.GET("/orders/search", h.searchOrders)
		v1.GET("/orders/:id", h.getOrder)
		v1.GET("/analytics", h.salesAnalytics)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addCartItem)
		v1.DELETE("/cart/items/:index", h.removeCartItem)
		v1.PUT("/cart/outlet", h.selectOutlet)
		v1.PUT("/cart/meta", h.updateCartMeta)
		v1.POST("/cart/clear", h.clearCart)

		v1.POST("/orders", h.confirmOrder)
		v1.POST("/commands", h.interpretCommand)
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// respondError maps core error kinds onto HTTP statuses. Validation
// and processing failures are user mistakes (4xx); persistence and
// corruption failures are server faults (5xx).
func respondError(c *gin.Context, err error) {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       verr.Message,
			"suggestions": verr.Suggestions,
		})
		return
	}

	var perr *errs.OrderProcessingError
	if errors.As(err, &perr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": perr.Message,
			"kind":  perr.Kind,
		})
		return
	}

	var cerr *errs.CorruptionError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Stored data is corrupted and needs manual intervention",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

func (h *Handler) listProducts(c *gin.Context) {
	var criteria service.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter criteria"})
		return
	}

	products, err := h.store.LoadProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": service.FilterProducts(products, criteria)})
}

func (h *Handler) searchProducts(c *gin.Context) {
	query := validate.SanitizeInput(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	products, err := h.store.LoadProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": service.SearchProducts(products, query)})
}

func (h *Handler) lowStockProducts(c *gin.Context) {
	threshold := h.lowStockDefault
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}
		threshold = parsed
	}

	products, err := h.store.LoadProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": service.LowStockProducts(products, threshold)})
}

func (h *Handler) listOutlets(c *gin.Context) {
	outlets, err := h.store.LoadOutlets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outlets": outlets})
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) searchOrders(c *gin.Context) {
	query := validate.SanitizeInput(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": service.SearchOrders(orders, query)})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusNotFound, gin.H{"error": verr.Message})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) salesAnalytics(c *gin.Context) {
	var dateRange *service.DateRange
	start, end := c.Query("start"), c.Query("end")
	if start != "" || end != "" {
		dateRange = &service.DateRange{Start: start, End: end}
	}

	summary, err := h.orderService.GetSalesAnalytics(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) sessionID(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	return "default"
}

type cartView struct {
	Items           any     `json:"items"`
	OutletID        string  `json:"outlet_id"`
	Notes           string  `json:"notes"`
	DiscountPercent float64 `json:"discount_percent"`
	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discount_amount"`
	TaxAmount       float64 `json:"tax_amount"`
	FinalTotal      float64 `json:"final_total"`
}

func (h *Handler) getCart(c *gin.Context) {
	sessionCart := h.sessions.Cart(h.sessionID(c))
	subtotal, discount, tax, total := sessionCart.Totals()

	c.JSON(http.StatusOK, cartView{
		Items:           sessionCart.Items,
		OutletID:        sessionCart.OutletID,
		Notes:           sessionCart.Notes,
		DiscountPercent: sessionCart.DiscountPercent,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		TaxAmount:       tax,
		FinalTotal:      total,
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sessionCart := h.sessions.Cart(h.sessionID(c))
	if err := h.orderService.AddToCart(c.Request.Context(), sessionCart, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": sessionCart.Items})
}

func (h *Handler) removeCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return
	}

	sessionCart := h.sessions.Cart(h.sessionID(c))
	if err := sessionCart.RemoveItem(index); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": sessionCart.Items})
}

type selectOutletRequest struct {
	OutletID string `json:"outlet_id"`
	Name     string `json:"name"`
}

func (h *Handler) selectOutlet(c *gin.Context) {
	var req selectOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sessionCart := h.sessions.Cart(h.sessionID(c))

	if req.OutletID != "" {
		sessionCart.OutletID = req.OutletID
	} else if req.Name != "" {
		if err := h.orderService.SelectOutletByName(c.Request.Context(), sessionCart, req.Name); err != nil {
			respondError(c, err)
			return
		}
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide outlet_id or name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outlet_id": sessionCart.OutletID})
}

type cartMetaRequest struct {
	Notes           *string  `json:"notes"`
	DiscountPercent *float64 `json:"discount_percent"`
}

func (h *Handler) updateCartMeta(c *gin.Context) {
	var req cartMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sessionCart := h.sessions.Cart(h.sessionID(c))
	if req.Notes != nil {
		sessionCart.Notes = validate.SanitizeInput(*req.Notes)
	}
	if req.DiscountPercent != nil {
		if err := sessionCart.SetDiscount(*req.DiscountPercent); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notes":            sessionCart.Notes,
		"discount_percent": sessionCart.DiscountPercent,
	})
}

func (h *Handler) clearCart(c *gin.Context) {
	h.sessions.Cart(h.sessionID(c)).Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *Handler) confirmOrder(c *gin.Context) {
	sessionCart := h.sessions.Cart(h.sessionID(c))

	order, err := h.orderService.ConfirmOrder(c.Request.Context(), sessionCart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

type commandRequest struct {
	Text string `json:"text"`
}

// interpretCommand parses a free-text command and, for cart-affecting
// intents, applies it to the session cart the way the voice flow in
// the original workflow does.
func (h *Handler) interpretCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	interpretation := command.Interpret(validate.SanitizeInput(req.Text))
	util.CommandsInterpretedTotal.WithLabelValues(string(interpretation.Intent)).Inc()

	sessionCart := h.sessions.Cart(h.sessionID(c))

	switch interpretation.Intent {
	case command.IntentAddProduct:
		err := h.orderService.AddToCartByName(c.Request.Context(), sessionCart,
			interpretation.Payload.Product, interpretation.Payload.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
	case command.IntentCreateOrder:
		if err := h.orderService.SelectOutletByName(c.Request.Context(), sessionCart, interpretation.Payload.Outlet); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, interpretation)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
