package domain

import "time"

type Profile struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Restaurant struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"owner_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID              int       `json:"id"`
	RestaurantID    int       `json:"restaurant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Ingredients     string    `json:"ingredients"`
	Calories        int       `json:"calories"`
	Protein         float64   `json:"protein"`
	ImageURL        string    `json:"image_url"`
	ModelURL        string    `json:"model_url"`
	Availability    bool      `json:"availability"`
	PrepTimeMinutes int       `json:"preparation_time_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// Order is one dish line of a checkout. A multi-item cart produces one row
// per line; the rows share no grouping key and the first inserted id serves
// as the customer-facing order id.
type Order struct {
	ID             int       `json:"id"`
	RestaurantID   int       `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	DishID         int       `json:"dish_id"`
	DishName       string    `json:"dish_name,omitempty"`
	DishPrice      float64   `json:"dish_price,omitempty"`
	Quantity       int       `json:"quantity"`
	TableNumber    int       `json:"table_number"`
	CustomerNotes  string    `json:"customer_notes"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderEvent is published to Kafka for every order row created at checkout.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	DishID       int       `json:"dish_id"`
	Quantity     int       `json:"quantity"`
	Timestamp    time.Time `json:"timestamp"`
}

const EventOrderPlaced = "order_placed"

type PlatformStats struct {
	TotalRestaurants       int     `json:"total_restaurants"`
	TotalUsers             int     `json:"total_users"`
	TotalOrders            int     `json:"total_orders"`
	TotalRevenue           float64 `json:"total_revenue"`
	OrdersToday            int     `json:"orders_today"`
	NewRestaurantsThisWeek int     `json:"new_restaurants_this_week"`
}

type RestaurantOverview struct {
	Restaurant
	OwnerName   string `json:"owner_name"`
	DishesCount int    `json:"dishes_count"`
	OrdersCount int    `json:"orders_count"`
}

type ProfileOverview struct {
	Profile
	RestaurantsCount int `json:"restaurants_count"`
}
