package service

import (
	"context"

	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/domain"
)

type ProfileRepository interface {
	CreateProfile(p *domain.Profile) error
	GetProfile(id int) (*domain.Profile, error)
	GetProfileByEmail(email string) (*domain.Profile, error)
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantByOwner(ownerID int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	SaveQRCode(restaurantID int, qr []byte) error
	GetQRCode(restaurantID int) ([]byte, error)
}

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	GetDish(restaurantID, dishID int) (*domain.Dish, error)
	ListDishes(restaurantID int) ([]domain.Dish, error)
	ListAvailableDishes(restaurantID int) ([]domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	SetAvailability(restaurantID, dishID int, available bool) error
	DeleteDish(restaurantID, dishID int) (int64, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListRestaurantOrders(restaurantID int) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status domain.Status) (int64, error)
}

type AdminRepository interface {
	PlatformStats() (*domain.PlatformStats, error)
	ListRestaurantOverviews() ([]domain.RestaurantOverview, error)
	ListProfileOverviews(limit int) ([]domain.ProfileOverview, error)
	ListRecentOrders(limit int) ([]domain.Order, error)
}

type StatsCache interface {
	GetStats(ctx context.Context) (*domain.PlatformStats, error)
	SetStats(ctx context.Context, stats *domain.PlatformStats) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

type AuthServiceInterface interface {
	SignUp(email, password, fullName string) (*domain.Profile, string, error)
	SignIn(email, password string) (*domain.Profile, string, error)
}

type CatalogServiceInterface interface {
	Restaurant(id int) (*domain.Restaurant, error)
	AvailableDishes(restaurantID int) ([]domain.Dish, error)
	Dish(restaurantID, dishID int) (*domain.Dish, error)
}

type RestaurantServiceInterface interface {
	Setup(ownerID int, name, location string) (*domain.Restaurant, error)
	ByOwner(ownerID int) (*domain.Restaurant, error)
	Update(ownerID int, name, location string) (*domain.Restaurant, error)
	QRCode(restaurantID int) ([]byte, error)
}

type DishServiceInterface interface {
	Create(dish *domain.Dish) error
	List(restaurantID int) ([]domain.Dish, error)
	Get(restaurantID, dishID int) (*domain.Dish, error)
	Update(dish *domain.Dish) error
	SetAvailability(restaurantID, dishID int, available bool) error
	Delete(restaurantID, dishID int) (int64, error)
}

type CheckoutServiceInterface interface {
	Submit(ctx context.Context, restaurantID int, lines []cart.Line, tableNumber, customerNotes string) (*CheckoutResult, error)
}

type OrderServiceInterface interface {
	Get(orderID int) (*domain.Order, error)
	ListForOwner(ownerID int) ([]domain.Order, error)
	UpdateStatus(ownerID, orderID int, next domain.Status) error
}

type AdminServiceInterface interface {
	Stats(ctx context.Context) (*domain.PlatformStats, error)
	Restaurants() ([]domain.RestaurantOverview, error)
	Users() ([]domain.ProfileOverview, error)
	RecentOrders() ([]domain.Order, error)
}

var (
	_ AuthServiceInterface       = (*AuthService)(nil)
	_ CatalogServiceInterface    = (*CatalogService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ DishServiceInterface       = (*DishService)(nil)
	_ CheckoutServiceInterface   = (*CheckoutService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ AdminServiceInterface      = (*AdminService)(nil)
)
