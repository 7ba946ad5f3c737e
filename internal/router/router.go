package router

import (
	"net/http"
	"strings"

	"shopcore/internal/handler"
	"shopcore/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// uploadsDir is the directory served under /uploads/; when empty, no static
// file route is mounted.
func New(
	productHandler *handler.ProductHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	uploadsDir string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Root greeting. The pattern "/" also catches every unregistered path,
	// so anything other than the root itself is a 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": "Not found."}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Welcome to the ShopCore API"}`))
	})

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Uploaded product images, served straight from disk when the local
	// image store is active.
	if uploadsDir != "" {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products" || r.URL.Path == "/api/products/" {
			if r.Method == http.MethodPost {
				productHandler.Create(w, r)
				return
			}
			productHandler.GetAll(w, r)
			return
		}

		if strings.HasSuffix(r.URL.Path, "/image") {
			productHandler.UploadImage(w, r)
			return
		}

		switch r.Method {
		case http.MethodPut:
			productHandler.Update(w, r)
		case http.MethodDelete:
			productHandler.Delete(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// User handler function
	userRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/users" || r.URL.Path == "/api/users/" {
			userHandler.GetAll(w, r)
			return
		}

		switch r.Method {
		case http.MethodPut:
			userHandler.Update(w, r)
		case http.MethodDelete:
			userHandler.Delete(w, r)
		default:
			userHandler.GetByID(w, r)
		}
	}

	mux.HandleFunc("/api/users", userRouteHandler)
	mux.HandleFunc("/api/users/", userRouteHandler)

	// Auth routes
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)

	// Cart handler function. The collection path adds items, /items/{id}
	// manages a single line, and /{userID} reads or clears a whole cart.
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/" {
			cartHandler.Add(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") {
			if r.Method == http.MethodPut {
				cartHandler.UpdateQuantity(w, r)
				return
			}
			cartHandler.Remove(w, r)
			return
		}

		if r.Method == http.MethodDelete {
			cartHandler.Clear(w, r)
			return
		}
		cartHandler.GetByUser(w, r)
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			if r.Method == http.MethodPost {
				orderHandler.Create(w, r)
				return
			}
			orderHandler.GetAll(w, r)
			return
		}

		switch r.Method {
		case http.MethodPut:
			orderHandler.UpdateStatus(w, r)
		case http.MethodDelete:
			orderHandler.Delete(w, r)
		default:
			orderHandler.GetByID(w, r)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Category handler function
	categoryRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/categories" || r.URL.Path == "/api/admin/categories/" {
			if r.Method == http.MethodPost {
				adminHandler.CreateCategory(w, r)
				return
			}
			adminHandler.GetCategories(w, r)
			return
		}

		switch r.Method {
		case http.MethodPut:
			adminHandler.RenameCategory(w, r)
		case http.MethodDelete:
			adminHandler.DeleteCategory(w, r)
		default:
			adminHandler.GetCategory(w, r)
		}
	}

	mux.HandleFunc("/api/admin/categories", categoryRouteHandler)
	mux.HandleFunc("/api/admin/categories/", categoryRouteHandler)

	mux.HandleFunc("/api/admin/stats", adminHandler.GetStats)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
