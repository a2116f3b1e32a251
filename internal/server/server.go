//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

// Service is the slice of the lifecycle orchestrator the HTTP layer calls.
type Service interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, in marketplace.NewItemInput) (*marketplace.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*marketplace.Item, error)
	SearchItems(ctx context.Context, f repository.ItemFilter) (*marketplace.ItemPage, error)
	UpdateItem(ctx context.Context, id, ownerID uuid.UUID, patch repository.ItemPatch) (*marketplace.Item, error)
	DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error
	ListCategories(ctx context.Context) ([]marketplace.Category, error)

	RequestToBorrow(ctx context.Context, itemID, borrowerID uuid.UUID, in marketplace.BorrowRequestInput) (*marketplace.Transaction, error)
	Approve(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)
	Reject(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID, callerID uuid.UUID, target marketplace.Status, notes string) (*marketplace.Transaction, error)
	MarkReturned(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)
	GetTransaction(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, role string, page, limit int) ([]marketplace.Transaction, error)
	ActiveTransactions(ctx context.Context, userID uuid.UUID) ([]marketplace.ActiveTransaction, error)
	TransactionStats(ctx context.Context) (*marketplace.Stats, error)

	CreatePaymentIntent(ctx context.Context, transactionID, callerID uuid.UUID, method string, amount int64) (*marketplace.Transaction, error)
	ConfirmPayment(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)
	RefundPayment(ctx context.Context, transactionID, callerID uuid.UUID) (*marketplace.Transaction, error)

	LeaveReview(ctx context.Context, transactionID, reviewerID uuid.UUID, in marketplace.ReviewInput) (*marketplace.Review, error)
	UserReviews(ctx context.Context, userID uuid.UUID) ([]marketplace.Review, error)

	Notifications(ctx context.Context, userID uuid.UUID, page, limit int) ([]marketplace.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (*marketplace.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadNotificationCount(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, id, userID uuid.UUID) error
}

// UserStore covers the account operations the HTTP layer needs directly.
type UserStore interface {
	Create(ctx context.Context, email, username, password, fullName string) (*repository.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
}

// Streamer serves a user's live notification stream.
type Streamer interface {
	ServeSSE(w http.ResponseWriter, r *http.Request, userID uuid.UUID)
}

type Config struct {
	Port      string
	JWTSecret string
}

type Server struct {
	service      Service
	users        UserStore
	streamer     Streamer
	config       Config
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(service Service, users UserStore, streamer Streamer, config Config, logger *zap.Logger) *Server {
	return &Server{
		service:      service,
		users:        users,
		streamer:     streamer,
		config:       config,
		logger:       logger,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, logger),
	}
}

// Run starts the HTTP server and blocks until it stops. Shutdown is driven
// by the caller cancelling ctx or calling Shutdown directly.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.config.Port,
		Handler: s.setupRoutes(),
		// no WriteTimeout: the notification stream holds its connection open
		ReadTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost).Name("register")
	router.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost).Name("login")
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	// audit runs inside auth so entries carry the resolved user id, and the
	// register/login bodies never reach the audit log
	api.Use(s.authMiddleware, s.auditLogMiddleware)

	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet).Name("listCategories")

	api.HandleFunc("/items", s.handleSearchItems).Methods(http.MethodGet).Name("searchItems")
	api.HandleFunc("/items", s.handleCreateItem).Methods(http.MethodPost).Name("createItem")
	api.HandleFunc("/items/{id}", s.handleGetItem).Methods(http.MethodGet).Name("getItem")
	api.HandleFunc("/items/{id}", s.handleUpdateItem).Methods(http.MethodPatch).Name("updateItem")
	api.HandleFunc("/items/{id}", s.handleDeleteItem).Methods(http.MethodDelete).Name("deleteItem")
	api.HandleFunc("/items/{id}/request", s.handleRequestToBorrow).Methods(http.MethodPost).Name("requestToBorrow")

	api.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet).Name("listTransactions")
	api.HandleFunc("/transactions/active", s.handleActiveTransactions).Methods(http.MethodGet).Name("activeTransactions")
	api.HandleFunc("/transactions/stats", s.handleTransactionStats).Methods(http.MethodGet).Name("transactionStats")
	api.HandleFunc("/transactions/{id}", s.handleGetTransaction).Methods(http.MethodGet).Name("getTransaction")
	api.HandleFunc("/transactions/{id}/approve", s.handleApprove).Methods(http.MethodPost).Name("approveTransaction")
	api.HandleFunc("/transactions/{id}/reject", s.handleReject).Methods(http.MethodPost).Name("rejectTransaction")
	api.HandleFunc("/transactions/{id}/status", s.handleUpdateStatus).Methods(http.MethodPut).Name("updateTransactionStatus")
	api.HandleFunc("/transactions/{id}/return", s.handleMarkReturned).Methods(http.MethodPost).Name("markReturned")
	api.HandleFunc("/transactions/{id}/payment", s.handleCreatePaymentIntent).Methods(http.MethodPost).Name("createPaymentIntent")
	api.HandleFunc("/transactions/{id}/payment/confirm", s.handleConfirmPayment).Methods(http.MethodPost).Name("confirmPayment")
	api.HandleFunc("/transactions/{id}/payment/refund", s.handleRefundPayment).Methods(http.MethodPost).Name("refundPayment")
	api.HandleFunc("/transactions/{id}/review", s.handleLeaveReview).Methods(http.MethodPost).Name("leaveReview")

	api.HandleFunc("/users/{id}/reviews", s.handleUserReviews).Methods(http.MethodGet).Name("userReviews")

	api.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet).Name("listNotifications")
	api.HandleFunc("/notifications/stream", s.handleNotificationStream).Methods(http.MethodGet).Name("notificationStream")
	api.HandleFunc("/notifications/unread-count", s.handleUnreadCount).Methods(http.MethodGet).Name("unreadCount")
	api.HandleFunc("/notifications/read-all", s.handleMarkAllRead).Methods(http.MethodPost).Name("markAllNotificationsRead")
	api.HandleFunc("/notifications/{id}/read", s.handleMarkRead).Methods(http.MethodPost).Name("markNotificationRead")
	api.HandleFunc("/notifications/{id}", s.handleDeleteNotification).Methods(http.MethodDelete).Name("deleteNotification")

	return router
}
