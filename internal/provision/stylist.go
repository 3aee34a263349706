package provision

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/models"
)

const (
	defaultStart = "10:00"
	defaultEnd   = "18:30"
)

// EnsureStylistSchedule seeds a Monday through Friday 10:00-18:30 schedule
// for a user that just became a stylist. Existing rows are left untouched.
func EnsureStylistSchedule(ctx context.Context, db *gorm.DB, stylistID uint) error {
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Availability{}).
		Where("stylist_id = ?", stylistID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.Availability, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		rows = append(rows, models.Availability{
			StylistID: stylistID,
			Weekday:   int(wd),
			StartTime: defaultStart,
			EndTime:   defaultEnd,
		})
	}

	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}

	log.Info().Uint("stylist_id", stylistID).Msg("default stylist schedule created")
	return nil
}
