package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	GigHandler          *GigHandler
	BidHandler          *BidHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
