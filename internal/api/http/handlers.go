package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"qr-dish-reality/internal/auth"
	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/domain"
	"qr-dish-reality/internal/service"
)

type Handler struct {
	Auth        service.AuthServiceInterface
	Catalog     service.CatalogServiceInterface
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	Orders      service.OrderServiceInterface
	Checkout    service.CheckoutServiceInterface
	Admin       service.AdminServiceInterface
	Carts       *cart.Store
	JWTSecret   []byte
}

func NewHandler(
	authSvc service.AuthServiceInterface,
	catalogSvc service.CatalogServiceInterface,
	restSvc service.RestaurantServiceInterface,
	dishSvc service.DishServiceInterface,
	orderSvc service.OrderServiceInterface,
	checkoutSvc service.CheckoutServiceInterface,
	adminSvc service.AdminServiceInterface,
	carts *cart.Store,
	jwtSecret []byte,
) *Handler {
	return &Handler{
		Auth:        authSvc,
		Catalog:     catalogSvc,
		Restaurants: restSvc,
		Dishes:      dishSvc,
		Orders:      orderSvc,
		Checkout:    checkoutSvc,
		Admin:       adminSvc,
		Carts:       carts,
		JWTSecret:   jwtSecret,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")
	r.HandleFunc("/api/session", h.newSession).Methods("POST")

	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{id}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")

	r.HandleFunc("/api/my/restaurant", h.requireSession(h.setupRestaurant)).Methods("POST")
	r.HandleFunc("/api/my/restaurant", h.requireSession(h.myRestaurant)).Methods("GET")
	r.HandleFunc("/api/my/restaurant", h.requireSession(h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/api/my/dishes", h.requireSession(h.createDish)).Methods("POST")
	r.HandleFunc("/api/my/dishes", h.requireSession(h.listDishes)).Methods("GET")
	r.HandleFunc("/api/my/dishes/{dishId}", h.requireSession(h.updateDish)).Methods("PUT")
	r.HandleFunc("/api/my/dishes/{dishId}", h.requireSession(h.deleteDish)).Methods("DELETE")
	r.HandleFunc("/api/my/dishes/{dishId}/availability", h.requireSession(h.setDishAvailability)).Methods("PATCH")
	r.HandleFunc("/api/my/orders", h.requireSession(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/my/orders/{id}/status", h.requireSession(h.updateOrderStatus)).Methods("PATCH")

	r.HandleFunc("/api/admin/stats", h.requireAdmin(h.adminStats)).Methods("GET")
	r.HandleFunc("/api/admin/restaurants", h.requireAdmin(h.adminRestaurants)).Methods("GET")
	r.HandleFunc("/api/admin/users", h.requireAdmin(h.adminUsers)).Methods("GET")
	r.HandleFunc("/api/admin/orders", h.requireAdmin(h.adminOrders)).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "qr-menu",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile, token, err := h.Auth.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"token": token, "profile": profile})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile, token, err := h.Auth.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "profile": profile})
}

// newSession hands out an opaque cart session id for customers who do not
// have one yet.
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": uuid.NewString()})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Catalog.Restaurant(id)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dishes, err := h.Catalog.AvailableDishes(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Restaurants.QRCode(id)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := r.Header.Get("X-Session-ID")
	if session == "" {
		http.Error(w, "X-Session-ID header required", http.StatusBadRequest)
		return "", false
	}
	return session, true
}

type cartView struct {
	Lines      []cart.Line `json:"lines"`
	TotalPrice float64     `json:"total_price"`
	TotalItems int         `json:"total_items"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])
	lines, total, items := h.Carts.View(session, restaurantID)
	writeJSON(w, http.StatusOK, cartView{Lines: lines, TotalPrice: total, TotalItems: items})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		DishID int `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Catalog.Dish(restaurantID, req.DishID)
	if err != nil {
		if errors.Is(err, service.ErrDishUnavailable) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}

	h.Carts.Add(session, restaurantID, *dish)
	lines, total, items := h.Carts.View(session, restaurantID)
	writeJSON(w, http.StatusOK, cartView{Lines: lines, TotalPrice: total, TotalItems: items})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])

	h.Carts.Remove(session, restaurantID, dishID)
	lines, total, items := h.Carts.View(session, restaurantID)
	writeJSON(w, http.StatusOK, cartView{Lines: lines, TotalPrice: total, TotalItems: items})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		TableNumber   string `json:"table_number"`
		CustomerNotes string `json:"customer_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines, err := h.Carts.BeginCheckout(session, restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	result, err := h.Checkout.Submit(r.Context(), restaurantID, lines, req.TableNumber, req.CustomerNotes)
	if err != nil {
		h.Carts.EndCheckout(session, restaurantID, false)
		if errors.Is(err, service.ErrEmptyCart) || errors.Is(err, service.ErrInvalidTableNumber) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to place order. Please try again.", http.StatusInternalServerError)
		return
	}

	h.Carts.EndCheckout(session, restaurantID, true)
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) setupRestaurant(w http.ResponseWriter, r *http.Request, session auth.Session) {
	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.Setup(session.ProfileID, req.Name, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, service.ErrInvalidRestaurant) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) myRestaurant(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, err := h.Restaurants.ByOwner(session.ProfileID)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request, session auth.Session) {
	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.Update(session.ProfileID, req.Name, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRestaurant) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

// ownedRestaurant resolves the caller's restaurant for dish and order
// endpoints; every owner mutation is scoped to it.
func (h *Handler) ownedRestaurant(w http.ResponseWriter, session auth.Session) (*domain.Restaurant, bool) {
	rest, err := h.Restaurants.ByOwner(session.ProfileID)
	if err != nil {
		http.Error(w, "Set up your restaurant first", http.StatusNotFound)
		return nil, false
	}
	return rest, true
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, ok := h.ownedRestaurant(w, session)
	if !ok {
		return
	}
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = rest.ID
	if err := h.Dishes.Create(&dish); err != nil {
		if errors.Is(err, service.ErrInvalidDish) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, ok := h.ownedRestaurant(w, session)
	if !ok {
		return
	}
	dishes, err := h.Dishes.List(rest.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, ok := h.ownedRestaurant(w, session)
	if !ok {
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = dishID
	dish.RestaurantID = rest.ID
	if err := h.Dishes.Update(&dish); err != nil {
		if errors.Is(err, service.ErrInvalidDish) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, ok := h.ownedRestaurant(w, session)
	if !ok {
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	rows, err := h.Dishes.Delete(rest.ID, dishID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setDishAvailability(w http.ResponseWriter, r *http.Request, session auth.Session) {
	rest, ok := h.ownedRestaurant(w, session)
	if !ok {
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	var req struct {
		Availability bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.SetAvailability(rest.ID, dishID, req.Availability); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"availability": req.Availability})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, session auth.Session) {
	orders, err := h.Orders.ListForOwner(session.ProfileID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, session auth.Session) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.UpdateStatus(session.ProfileID, orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrNotOwner):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, service.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Status{"status": req.Status})
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request, session auth.Session) {
	stats, err := h.Admin.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) adminRestaurants(w http.ResponseWriter, r *http.Request, session auth.Session) {
	overviews, err := h.Admin.Restaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if overviews == nil {
		overviews = []domain.RestaurantOverview{}
	}
	writeJSON(w, http.StatusOK, overviews)
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request, session auth.Session) {
	overviews, err := h.Admin.Users()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if overviews == nil {
		overviews = []domain.ProfileOverview{}
	}
	writeJSON(w, http.StatusOK, overviews)
}

func (h *Handler) adminOrders(w http.ResponseWriter, r *http.Request, session auth.Session) {
	orders, err := h.Admin.RecentOrders()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
