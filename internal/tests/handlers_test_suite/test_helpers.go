package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	api "github.com/adisantoso/toko-bangunan/internal/http"
	handler "github.com/adisantoso/toko-bangunan/internal/http/handlers"
	"github.com/adisantoso/toko-bangunan/internal/auth"
	"github.com/adisantoso/toko-bangunan/internal/repo"
	"github.com/adisantoso/toko-bangunan/internal/shop"
)

var (
	token           string
	productRepo     *repo.InMemoryProductRepository
	transactionRepo *repo.InMemoryTransactionRepository
	cartRepo        *repo.InMemoryCartRepository
)

func init() {
	setupTestRepos("admin123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	transactionRepo = repo.NewInMemoryTransactionRepository()
	handler.SetTransactionRepo(transactionRepo)

	cartRepo = repo.NewInMemoryCartRepository()

	analyticsRepo := repo.NewInMemoryAnalyticsRepository(10)
	analyticsRepo.SetRepositories(productRepo, transactionRepo)
	handler.SetAnalyticsRepo(analyticsRepo)

	handler.SetShopService(shop.NewService(productRepo, transactionRepo, cartRepo, 10))
	handler.SetPasswordVerifier(auth.StaticVerifier{Password: password})
}

func clearAll() {
	productRepo.Clear()
	transactionRepo.Clear()
	cartRepo.Clear()
}

func generateToken(r http.Handler, password string) (string, error) {
	payload := handler.LoginRequest{Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCart(r http.Handler) (handler.CartResponse, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/carts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var cart handler.CartResponse
	json.NewDecoder(w.Body).Decode(&cart)
	return cart, w
}

func addCartItem(r http.Handler, cartID, productID string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.AddItemRequest{ProductID: productID})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/carts/%s/items", cartID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func changeCartItem(r http.Handler, cartID, productID string, delta int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.QuantityChangeRequest{Delta: delta})
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/carts/%s/items/%s", cartID, productID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkoutCart(r http.Handler, cartID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/carts/%s/checkout", cartID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func restockProduct(r http.Handler, productID string, amount int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.RestockRequest{Amount: amount})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%s/restock", productID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func semenRequest() handler.ProductRequest {
	return handler.ProductRequest{
		Id:       "P001",
		Name:     "Semen Tiga Roda 50kg",
		Category: "Semen",
		Price:    65000,
		Stock:    150,
		Unit:     "sak",
		WeightKg: 50,
	}
}
