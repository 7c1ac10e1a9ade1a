package http

// Request bodies.

type addOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type updateOrderItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type placeOrderRequest struct {
	Method          string  `json:"method"`
	CardholderName  string  `json:"cardholder_name"`
	BillingAddress  *string `json:"billing_address,omitempty"`
	CardNumber      string  `json:"card_number"`
	ExpirationMonth int     `json:"expiration_month"`
	ExpirationYear  int     `json:"expiration_year"`
	CVV             string  `json:"cvv"`
}

type updateDeliveryEtaRequest struct {
	MinutesAway string `json:"minutes_away"`
}

type updateLocationRequest struct {
	Address string `json:"address"`
}

// Response bodies. Money travels as fixed two-decimal strings.

type cartLine struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

type cartResponse struct {
	OrderID      string     `json:"order_id"`
	Lines        []cartLine `json:"lines"`
	RunningTotal string     `json:"running_total"`
}

type deliveryQueueEntry struct {
	OrderID         string  `json:"order_id"`
	RestaurantName  string  `json:"restaurant_name"`
	TotalCost       string  `json:"total_cost"`
	RestaurantMiles float64 `json:"restaurant_miles"`
	CustomerMiles   float64 `json:"customer_miles"`
}

type acceptedDelivery struct {
	OrderID           string  `json:"order_id"`
	RestaurantName    string  `json:"restaurant_name"`
	RestaurantAddress string  `json:"restaurant_address"`
	CustomerName      string  `json:"customer_name"`
	CustomerAddress   *string `json:"customer_address,omitempty"`
	TotalCost         string  `json:"total_cost"`
	MinutesAway       *int    `json:"minutes_away,omitempty"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
