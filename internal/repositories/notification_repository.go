package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gigflow_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

type NotificationRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) NotificationRepository

	CreateNotification(notification *models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) (int64, error)
	GetUnreadCount(userID string) (int64, error)
	DeleteNotification(id string) error

	// Factory methods for the notification types the platform emits.
	CreateBidAcceptedNotification(freelancerID, senderID, gigID, bidID, gigTitle string) (*models.Notification, error)
	CreateNewBidNotification(ownerID, senderID, gigID, bidID, freelancerName string, amount float64) (*models.Notification, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// Search criteria for notifications.
type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	Page       int    `form:"page" binding:"min=1"`
	PageSize   int    `form:"page_size" binding:"min=1,max=100"`
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) WithTx(tx *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: tx}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}

	db, cancel := withTimeout(r.db)
	defer cancel()
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var notification models.Notification
	err := db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var notifications []models.Notification
	query := db.Where("user_id = ?", userID)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	var total int64
	if err := query.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) (int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})

	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var count int64
	err := db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) DeleteNotification(id string) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	result := db.Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// Factory methods

func (r *NotificationRepositoryImpl) CreateBidAcceptedNotification(freelancerID, senderID, gigID, bidID, gigTitle string) (*models.Notification, error) {
	data := map[string]interface{}{
		"gig_id": gigID,
		"bid_id": bidID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:    freelancerID,
		SenderID:  senderID,
		Type:      models.NotificationTypeBidAccepted,
		Title:     "You have been hired",
		Message:   fmt.Sprintf("Congratulations! You have been hired for '%s'", gigTitle),
		RelatedID: gigID,
		Data:      datatypes.JSON(jsonData),
	}

	if err := r.CreateNotification(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (r *NotificationRepositoryImpl) CreateNewBidNotification(ownerID, senderID, gigID, bidID, freelancerName string, amount float64) (*models.Notification, error) {
	data := map[string]interface{}{
		"gig_id": gigID,
		"bid_id": bidID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:    ownerID,
		SenderID:  senderID,
		Type:      models.NotificationTypeNewBid,
		Title:     "New bid on your gig",
		Message:   fmt.Sprintf("%s placed a bid of $%.2f on your gig", freelancerName, amount),
		RelatedID: gigID,
		Data:      datatypes.JSON(jsonData),
	}

	if err := r.CreateNotification(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// Helper methods

func (r *NotificationRepositoryImpl) validateNotification(notification *models.Notification) error {
	if notification.UserID == "" {
		return errors.New("user ID is required")
	}

	if notification.Type == "" {
		return errors.New("notification type is required")
	}

	if notification.Title == "" {
		return errors.New("notification title is required")
	}

	if !notification.Type.Valid() {
		return fmt.Errorf("invalid notification type: %s", notification.Type)
	}

	if len(notification.Data) > 0 {
		if !json.Valid(notification.Data) {
			return ErrInvalidNotificationData
		}
	}

	return nil
}
