// file: internals/features/members/engagement/service/recalc.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	memberModel "faithtracker_backend/internals/features/members/members/model"
)

// Summary potret hasil satu putaran recalculation.
type Summary struct {
	CampusID     uuid.UUID `json:"campus_id"`
	UpdatedCount int       `json:"updated_count"`
	Active       int       `json:"active"`
	AtRisk       int       `json:"at_risk"`
	Disconnected int       `json:"disconnected"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Recalculator menghitung ulang cache status engagement seluruh jemaat satu
// campus. Request yang datang bersamaan untuk campus yang sama digabung lewat
// singleflight: cukup satu putaran, semuanya dapat hasil yang sama.
type Recalculator struct {
	DB    *gorm.DB
	Cache *careSettingService.Cache

	group singleflight.Group
}

func NewRecalculator(db *gorm.DB, cache *careSettingService.Cache) *Recalculator {
	return &Recalculator{DB: db, Cache: cache}
}

// RecalculateAll berjalan di context.Background(): sekali mulai, putaran jalan
// sampai selesai walau caller HTTP-nya putus di tengah.
func (r *Recalculator) RecalculateAll(campusID uuid.UUID) (Summary, error) {
	v, err, _ := r.group.Do(campusID.String(), func() (any, error) {
		return r.runOnce(context.Background(), campusID)
	})
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func (r *Recalculator) runOnce(ctx context.Context, campusID uuid.UUID) (Summary, error) {
	snap, err := r.Cache.Get(campusID)
	if err != nil {
		return Summary{}, err
	}

	now := time.Now()
	sum := Summary{CampusID: campusID}

	const batchSize = 500
	var batch []memberModel.MemberModel
	err = r.DB.WithContext(ctx).
		Where("member_campus_id = ? AND member_deleted_at IS NULL", campusID).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				m := &batch[i]

				var last *time.Time
				if m.MemberLastContactDate != nil {
					t := time.Time(*m.MemberLastContactDate)
					last = &t
				}
				res := Classify(last, snap, now)

				switch res.Status {
				case StatusActive:
					sum.Active++
				case StatusAtRisk:
					sum.AtRisk++
				default:
					sum.Disconnected++
				}

				if string(res.Status) == m.MemberEngagementStatus && intPtrEqual(res.Days, m.MemberDaysSinceContact) {
					continue // cache masih benar, skip write
				}

				updates := map[string]any{
					"member_engagement_status":  string(res.Status),
					"member_days_since_contact": nil,
				}
				if res.Days != nil {
					updates["member_days_since_contact"] = *res.Days
				}
				if err := tx.Model(&memberModel.MemberModel{}).
					Where("member_id = ?", m.MemberID).
					Updates(updates).Error; err != nil {
					return err
				}
				sum.UpdatedCount++
			}
			return nil
		}).Error
	if err != nil {
		return Summary{}, err
	}

	sum.FinishedAt = time.Now()
	log.Printf("[ENGAGEMENT] campus=%s recalculated: updated=%d active=%d at_risk=%d disconnected=%d",
		campusID, sum.UpdatedCount, sum.Active, sum.AtRisk, sum.Disconnected)
	return sum, nil
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
