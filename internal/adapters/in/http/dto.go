package http

// Error is the envelope for every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OccupyTableRequest seats a guest at a table.
type OccupyTableRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// TableResponse describes one table.
type TableResponse struct {
	Number   int    `json:"number"`
	Seats    int    `json:"seats"`
	Occupied bool   `json:"occupied"`
	Guest    string `json:"guest,omitempty"`
	OrderID  int64  `json:"orderId,omitempty"`
}

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// PlaceOrderRequest creates an order for a seated guest.
type PlaceOrderRequest struct {
	TableNumber  int                `json:"tableNumber"`
	Items        []OrderItemRequest `json:"items"`
	Instructions string             `json:"instructions,omitempty"`
}

// CompleteOrderRequest settles an order.
type CompleteOrderRequest struct {
	Method string `json:"method"`
}

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// StatusChangeResponse is one entry of an order's status history.
type StatusChangeResponse struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	At   string `json:"at"`
}

// OrderResponse describes one order.
type OrderResponse struct {
	ID           int64                  `json:"id"`
	TableNumber  int                    `json:"tableNumber"`
	Customer     string                 `json:"customer"`
	Status       string                 `json:"status"`
	Total        float64                `json:"total"`
	Items        []OrderItemResponse    `json:"items"`
	Instructions string                 `json:"instructions,omitempty"`
	History      []StatusChangeResponse `json:"history"`
	CompletedAt  string                 `json:"completedAt,omitempty"`
}

// StaffResponse describes one roster member.
type StaffResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	OnDuty         bool    `json:"onDuty"`
	Workload       string  `json:"workload"`
	AssignedOrders int     `json:"assignedOrders"`
	CompletedToday int     `json:"completedToday"`
	Efficiency     float64 `json:"efficiency"`
}

// DishRequest adds a dish to the menu.
type DishRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// DishResponse describes one menu entry.
type DishResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// PricingPolicyRequest switches the pricing policy for new orders.
type PricingPolicyRequest struct {
	Name string `json:"name"`
}

// StatisticsResponse aggregates store and staff figures.
type StatisticsResponse struct {
	TotalOrders    int            `json:"totalOrders"`
	OpenOrders     int            `json:"openOrders"`
	ActiveOrders   int            `json:"activeOrders"`
	ArchivedOrders int            `json:"archivedOrders"`
	CountsByStatus map[string]int `json:"countsByStatus"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalStaff     int            `json:"totalStaff"`
	StaffOnDuty    int            `json:"staffOnDuty"`
	AssignedOrders int            `json:"assignedOrders"`
	CompletedToday int            `json:"completedToday"`
}
