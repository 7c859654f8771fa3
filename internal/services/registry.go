package services

import (
	"gorm.io/gorm"

	"gigflow_backend/internal/email"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/workers"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	GigService          GigService
	BidService          BidService
	NotificationService NotificationService
	EmailService        email.Provider
}

// NewServiceContainer wires repositories, email and realtime delivery
// into the service layer.
func NewServiceContainer(
	db *gorm.DB,
	emailProvider email.Provider,
	realtime RealtimePublisher,
	dispatcher *workers.Dispatcher,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, emailProvider, dispatcher),
		GigService:          NewGigService(gigRepo),
		BidService:          NewBidService(db, gigRepo, bidRepo, userRepo, notificationRepo, emailProvider, realtime, dispatcher),
		NotificationService: NewNotificationService(notificationRepo),
		EmailService:        emailProvider,
	}
}
