package models

// CartItem is a product snapshot plus the selected quantity.
type CartItem struct {
	Product  `json:"product"`
	Quantity int `json:"quantity"`
}

// Cart is the session-scoped, pre-checkout selection of products.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines, in rupiah.
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// TotalWeightKg is the estimated shipping weight of the cart.
func (c Cart) TotalWeightKg() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.WeightKg * float64(item.Quantity)
	}
	return total
}

// Find returns the index of the line holding productID, or -1.
func (c Cart) Find(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
