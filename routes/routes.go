// routes/routes.go
package routes

import (
	"net/http"

	"bistro-boss/controllers"
	"bistro-boss/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Controllers groups every handler the router serves.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Menu    *controllers.MenuController
	Cart    *controllers.CartController
	Payment *controllers.PaymentController
	Stats   *controllers.StatsController
	Health  *controllers.HealthController
}

// Options carries the access-control collaborators.
type Options struct {
	Verifier              middleware.TokenVerifier
	Users                 middleware.UserFinder
	ProtectAdminPromotion bool
}

// New builds the mux router and wraps it with the global middleware chain:
// Recovery -> RequestID -> Logging -> CORS.
func New(c Controllers, opts Options, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, c, opts, logger)

	var handler http.Handler = router
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)
	return handler
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, opts Options, logger zerolog.Logger) {
	authed := middleware.Auth(opts.Verifier, logger)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authed(middleware.RequireAdmin(opts.Users, logger)(h))
	}
	authOnly := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	// Public routes
	router.HandleFunc("/", c.Health.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", c.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/jwt", c.Auth.IssueToken).Methods(http.MethodPost)

	// User routes
	router.Handle("/users", adminOnly(c.User.ListUsers)).Methods(http.MethodGet)
	router.HandleFunc("/users", c.User.CreateUser).Methods(http.MethodPost)
	router.Handle("/users/admin/{email}", authOnly(c.User.CheckAdmin)).Methods(http.MethodGet)
	if opts.ProtectAdminPromotion {
		router.Handle("/users/admin/{id}", adminOnly(c.User.MakeAdmin)).Methods(http.MethodPatch)
	} else {
		router.HandleFunc("/users/admin/{id}", c.User.MakeAdmin).Methods(http.MethodPatch)
	}

	// Menu routes
	router.HandleFunc("/menu", c.Menu.GetMenu).Methods(http.MethodGet)
	router.Handle("/menu", adminOnly(c.Menu.AddMenuItem)).Methods(http.MethodPost)
	router.Handle("/menu/{id}", adminOnly(c.Menu.DeleteMenuItem)).Methods(http.MethodDelete)
	router.HandleFunc("/reviews", c.Menu.GetReviews).Methods(http.MethodGet)

	// Cart routes
	router.Handle("/carts", authOnly(c.Cart.GetCart)).Methods(http.MethodGet)
	router.HandleFunc("/carts", c.Cart.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/carts/{id}", c.Cart.RemoveFromCart).Methods(http.MethodDelete)

	// Payment routes
	router.HandleFunc("/create-payment-intent", c.Payment.CreatePaymentIntent).Methods(http.MethodPost)
	router.HandleFunc("/payments", c.Payment.RecordPayment).Methods(http.MethodPost)
	router.Handle("/payments", authOnly(c.Payment.GetPayments)).Methods(http.MethodGet)

	// Admin dashboard
	router.Handle("/admin-stats", adminOnly(c.Stats.AdminStats)).Methods(http.MethodGet)
	router.Handle("/order-stats", adminOnly(c.Stats.OrderStats)).Methods(http.MethodGet)
}
