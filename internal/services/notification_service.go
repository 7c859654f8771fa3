package services

import (
	"encoding/json"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type NotificationService interface {
	GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) (*dto.NotificationResponse, error)
	MarkAllAsRead(userID string) (*dto.MarkAllReadResponse, error)
	GetUnreadCount(userID string) (*dto.UnreadCountResponse, error)
	DeleteNotification(userID, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var notificationResponses []*dto.NotificationResponse
	for i := range notifications {
		notificationResponses = append(notificationResponses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: notificationResponses,
		Total:         total,
		UnreadCount:   unread,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
		TotalPages:    calculateTotalPages(total, criteria.PageSize),
	}, nil
}

// MarkAsRead flips the read flag. Marking an already-read notification is
// a no-op that still returns the notification.
func (s *notificationService) MarkAsRead(userID, notificationID string) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return nil, apperrors.ErrNotificationAccessDenied
	}

	if !notification.IsRead {
		if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		notification, err = s.notificationRepo.FindNotificationByID(notificationID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return buildNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(userID string) (*dto.MarkAllReadResponse, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func (s *notificationService) GetUnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

func (s *notificationService) DeleteNotification(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrNotificationAccessDenied
	}

	if err := s.notificationRepo.DeleteNotification(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		SenderID:  notification.SenderID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		RelatedID: notification.RelatedID,
		IsRead:    notification.IsRead,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}

	if len(notification.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(notification.Data, &data); err == nil {
			response.Data = data
		}
	}

	return response
}
