package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/adisantoso/toko-bangunan/internal/shop"
)

// CreateCartHandler godoc
// @Summary Start a new empty cart
// @Tags carts
// @Produce json
// @Success 201 {object} CartResponse
// @Failure 500 {string} string "Internal error"
// @Router /carts [post]
func CreateCartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := shopService.CreateCart()
	if err != nil {
		http.Error(w, "could not create cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toCartResponse(cart))
}

// GetCartHandler godoc
// @Summary Get a cart with its derived totals
// @Tags carts
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartId} [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := shopService.GetCart(chi.URLParam(r, "cartId"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Description A product already in the cart is incremented, but never past its current stock
// @Tags carts
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /carts/{cartId}/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cart, err := shopService.AddItem(chi.URLParam(r, "cartId"), req.ProductID)
	if err != nil {
		writeShopError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// ChangeCartItemHandler godoc
// @Summary Change a cart line's quantity by a delta
// @Description An increase past current stock is rejected; a result of zero or less removes the line
// @Tags carts
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param change body QuantityChangeRequest true "Quantity delta"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /carts/{cartId}/items/{productId} [patch]
func ChangeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req QuantityChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cart, err := shopService.UpdateQuantity(chi.URLParam(r, "cartId"), chi.URLParam(r, "productId"), req.Delta)
	if err != nil {
		writeShopError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// RemoveCartItemHandler godoc
// @Summary Remove a line from the cart
// @Tags carts
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Cart not found"
// @Router /carts/{cartId}/items/{productId} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := shopService.RemoveItem(chi.URLParam(r, "cartId"), chi.URLParam(r, "productId"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// CheckoutHandler godoc
// @Summary Check out a cart
// @Description Atomically records one OUT transaction per cart line and deducts stock; clears the cart on success
// @Tags carts
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} CheckoutResult
// @Success 204 "Empty cart, nothing to do"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /carts/{cartId}/checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	receipt, err := shopService.Checkout(chi.URLParam(r, "cartId"))
	if err != nil {
		if errors.Is(err, shop.ErrEmptyCart) {
			// Checking out an empty cart is not an error, just nothing to do.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeShopError(w, err)
		return
	}
	if serverMetrics != nil {
		serverMetrics.Checkouts.Inc()
	}

	result := CheckoutResult{Receipt: make([]TransactionResponse, len(receipt))}
	for i, t := range receipt {
		result.Receipt[i] = toTransactionResponse(t)
		result.TotalPrice += t.TotalPrice
	}
	writeJSON(w, http.StatusOK, result)
}
