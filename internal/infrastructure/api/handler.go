package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"aurum-admin-core/internal/application"
	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/infrastructure/middleware"
	"aurum-admin-core/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxUploadSize caps multipart image uploads
const maxUploadSize = 10 << 20

// Handler holds the REST handlers for the admin panel
type Handler struct {
	auth      *application.AuthService
	shops     *application.ShopService
	catalog   *application.CatalogService
	analytics *application.AnalyticsService
	rates     *application.RatesService
	images    ports.ImageStore
	logger    zerolog.Logger
}

// NewHandler creates the REST handler set. images may be nil when no media
// CDN is configured; uploads then return 501.
func NewHandler(
	auth *application.AuthService,
	shops *application.ShopService,
	catalog *application.CatalogService,
	analytics *application.AnalyticsService,
	rates *application.RatesService,
	images ports.ImageStore,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		shops:     shops,
		catalog:   catalog,
		analytics: analytics,
		rates:     rates,
		images:    images,
		logger:    logger,
	}
}

// Routes builds the route table: public auth and rates endpoints, then
// owner-scoped resources behind the session middleware.
func (h *Handler) Routes(requireSession func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)
	r.Get("/rates", h.Rates)

	r.Group(func(r chi.Router) {
		r.Use(requireSession)

		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)
		r.Put("/auth/profile", h.NotImplemented)
		r.Put("/auth/password", h.NotImplemented)

		r.Get("/analytics", h.Dashboard)
		r.Post("/uploads", h.Upload)

		r.Route("/shops", func(r chi.Router) {
			r.Get("/", h.ListShops)
			r.Post("/", h.CreateShop)
			r.Get("/{shopId}", h.GetShop)
			r.Put("/{shopId}", h.UpdateShop)
			r.Delete("/{shopId}", h.DeleteShop)

			r.Get("/{shopId}/categories", h.ListCategories)
			r.Get("/{shopId}/products", h.ListProducts)
			r.Post("/{shopId}/products", h.CreateProduct)
			r.Get("/{shopId}/products/{productId}", h.GetProduct)
			r.Put("/{shopId}/products/{productId}", h.UpdateProduct)
			r.Delete("/{shopId}/products/{productId}", h.DeleteProduct)
		})
	})

	return r
}

// authUser is the administrator shape exposed to clients
type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	SessionID string   `json:"sessionId"`
	User      authUser `json:"user"`
}

func toAuthUser(admin *domain.Administrator) authUser {
	return authUser{ID: admin.ID, Email: admin.Email, Name: admin.Name}
}

// Signup handles POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var input application.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	admin, token, err := h.auth.Signup(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{SessionID: token, User: toAuthUser(admin)})
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	admin, token, err := h.auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{SessionID: token, User: toAuthUser(admin)})
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if err := h.auth.Logout(r.Context(), token); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := h.auth.GetAdmin(r.Context(), domain.GetAdminIDFromContext(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthUser(admin))
}

// NotImplemented covers endpoints declared but inert in this version
func (h *Handler) NotImplemented(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "not implemented"})
}

// Dashboard handles GET /analytics
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// Rates handles GET /rates. Never fails: the rates service recovers
// internally before an error could reach this layer.
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rates.Current(r.Context()))
}

// ListShops handles GET /shops
func (h *Handler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListShops(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if shops == nil {
		shops = []*domain.Shop{}
	}
	writeJSON(w, http.StatusOK, shops)
}

// CreateShop handles POST /shops
func (h *Handler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var input application.ShopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	shop, err := h.shops.CreateShop(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, shop)
}

// GetShop handles GET /shops/{shopId}
func (h *Handler) GetShop(w http.ResponseWriter, r *http.Request) {
	shop, err := h.shops.GetShop(r.Context(), chi.URLParam(r, "shopId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

// UpdateShop handles PUT /shops/{shopId}
func (h *Handler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	var input application.ShopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	shop, err := h.shops.UpdateShop(r.Context(), chi.URLParam(r, "shopId"), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, shop)
}

// DeleteShop handles DELETE /shops/{shopId}
func (h *Handler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	if err := h.shops.DeleteShop(r.Context(), chi.URLParam(r, "shopId")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "shop deleted"})
}

// ListCategories handles GET /shops/{shopId}/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context(), chi.URLParam(r, "shopId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// ListProducts handles GET /shops/{shopId}/products?category=…
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.catalog.ListProducts(r.Context(), chi.URLParam(r, "shopId"), category)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /shops/{shopId}/products/{productId}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "shopId"), chi.URLParam(r, "productId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /shops/{shopId}/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), chi.URLParam(r, "shopId"), &input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /shops/{shopId}/products/{productId}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var update domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "shopId"), chi.URLParam(r, "productId"), &update)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /shops/{shopId}/products/{productId}
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "shopId"), chi.URLParam(r, "productId")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Upload handles POST /uploads
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "uploads not configured"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: malformed multipart body", domain.ErrInvalidInput))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: image file is required", domain.ErrInvalidInput))
		return
	}
	defer file.Close()

	uploaded, err := h.images.Upload(r.Context(), file, header.Filename)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploaded)
}
