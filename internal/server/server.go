package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/handler"
	"marketplace-backend/internal/middleware"
)

// Handlers groups everything the HTTP surface needs.
type Handlers struct {
	Order       *handler.OrderHandler
	Category    *handler.CategoryHandler
	User        *handler.UserHandler
	Listing     *handler.ListingHandler
	Transaction *handler.TransactionHandler
	Review      *handler.ReviewHandler
	Event       *handler.EventHandler
	Upload      *handler.UploadHandler
	Webhook     *handler.WebhookHandler
}

type Server struct {
	echo     *echo.Echo
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperr.Wrap(apperr.KindValidation, "datos de entrada inválidos", err)
	}
	return nil
}

func NewServer(handlers Handlers, auth *middleware.AuthMiddleware) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:     e,
		handlers: handlers,
		auth:     auth,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	guard := s.auth.Middleware()

	// -------- pedidos (imported storefront orders) --------
	orders := api.Group("/pedidos", guard)
	orders.GET("/obtener-pagados", s.handlers.Order.ImportPaid)
	orders.GET("/obtener-por-estado/:estado", s.handlers.Order.ImportByStatus)
	orders.GET("", s.handlers.Order.GetAll)
	orders.GET("/:id", s.handlers.Order.GetByID)
	orders.PATCH("/:id", s.handlers.Order.Update)
	orders.DELETE("/:id", s.handlers.Order.Delete)

	// -------- categories --------
	api.GET("/categories/fetch", s.handlers.Category.Fetch, guard)
	api.GET("/categories", s.handlers.Category.GetAll)
	api.GET("/categories/:id", s.handlers.Category.GetByID)

	// -------- users --------
	api.GET("/users/estado", s.handlers.User.Status)
	api.POST("/users", s.handlers.User.Create)
	api.GET("/users", s.handlers.User.GetAll, guard)
	api.GET("/users/:uid", s.handlers.User.GetByID, guard)
	api.PUT("/users/:uid", s.handlers.User.Update, guard)
	api.DELETE("/users/:uid", s.handlers.User.Delete, guard)

	// -------- service listings --------
	api.POST("/services", s.handlers.Listing.Create)
	api.GET("/services", s.handlers.Listing.GetAll)
	api.GET("/services/:id", s.handlers.Listing.GetByID)
	api.PUT("/services/:id", s.handlers.Listing.Update)
	api.DELETE("/services/:id", s.handlers.Listing.Delete)

	// -------- transactions --------
	transactions := api.Group("/transactions")
	transactions.POST("", s.handlers.Transaction.Create)
	transactions.GET("", s.handlers.Transaction.GetAll)
	transactions.GET("/:transactionId", s.handlers.Transaction.GetByID)
	transactions.PATCH("/:transactionId/complete", s.handlers.Transaction.Complete)
	transactions.PATCH("/:transactionId/refund", s.handlers.Transaction.Refund)
	transactions.PATCH("/:transactionId", s.handlers.Transaction.Update)

	// -------- reviews --------
	reviews := api.Group("/reviews")
	reviews.POST("", s.handlers.Review.Create)
	reviews.GET("", s.handlers.Review.GetAll)
	reviews.GET("/professional/:professionalId", s.handlers.Review.GetByProfessional)
	reviews.GET("/request/:requestId", s.handlers.Review.GetByRequest)
	reviews.GET("/:id", s.handlers.Review.GetByID)
	reviews.PATCH("/:id", s.handlers.Review.Update)
	reviews.DELETE("/:id", s.handlers.Review.Delete)

	// -------- events --------
	events := api.Group("/events", guard)
	events.POST("", s.handlers.Event.Create)
	events.GET("", s.handlers.Event.GetAll)
	events.GET("/:id", s.handlers.Event.GetByID)
	events.PUT("/:id", s.handlers.Event.Update)
	events.PUT("/:id/cancel", s.handlers.Event.Cancel)
	events.DELETE("/:id", s.handlers.Event.Delete)

	// -------- uploads --------
	upload := api.Group("/upload", guard)
	upload.GET("/firma", s.handlers.Upload.Signature)
	upload.POST("/directo", s.handlers.Upload.Direct)

	// -------- storefront webhooks / callbacks --------
	api.POST("/webhooks/tienda", s.handlers.Webhook.StorefrontOrder)
}

// errorHandler translates taxonomy errors into JSON {message} responses.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := apperr.StatusCode(apperr.KindOf(err))
	message := apperr.Message(err)

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if jsonErr := c.JSON(status, map[string]string{"message": message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
