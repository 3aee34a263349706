package notification

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
)

// Event is one notification to be delivered to one user.
type Event struct {
	UserID               uint
	Title                string
	Message              string
	Type                 string
	RelatedAppointmentID *uint
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ev Event) error {
	n := models.Notification{
		UserID:               ev.UserID,
		Title:                ev.Title,
		Message:              ev.Message,
		Type:                 ev.Type,
		Read:                 false,
		RelatedAppointmentID: ev.RelatedAppointmentID,
	}
	return s.db.Create(&n).Error
}

// HasReminderToday reports whether a reminder for the appointment was already
// created today. Used by the daily sweep to avoid duplicate reminders.
func (s *Store) HasReminderToday(appointmentID uint, now time.Time) (bool, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := s.db.Model(&models.Notification{}).
		Where(
			"related_appointment_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			appointmentID,
			models.NotificationAppointmentReminder,
			startOfDay,
			startOfDay.Add(24*time.Hour),
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// pageOffset converts a 1-based page number to a row offset. Pages below 1
// are clamped to the first page, matching the appointment listings.
func pageOffset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}

func (s *Store) ListByUser(userID uint, page, size int) ([]models.Notification, int64, error) {
	var total int64
	q := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Notification
	query := s.db.Where("user_id = ?", userID).Order("created_at DESC")
	if size > 0 {
		query = query.Offset(pageOffset(page, size)).Limit(size)
	}
	if err := query.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *Store) ListUnread(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *Store) CountUnread(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips the read flag; a notification belonging to another user is
// reported as not found rather than forbidden.
func (s *Store) MarkRead(id, userID uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("notification_not_found", "Notification not found.")
		}
		return nil, err
	}
	if n.UserID != userID {
		return nil, httperr.ErrNotFound("notification_not_found", "Notification not found.")
	}

	n.Read = true
	if err := s.db.Save(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (s *Store) Delete(id, userID uint) error {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("notification_not_found", "Notification not found.")
		}
		return err
	}
	if n.UserID != userID {
		return httperr.ErrNotFound("notification_not_found", "Notification not found.")
	}
	return s.db.Delete(&n).Error
}
