// file: internals/features/members/members/service/contact.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/members/members/model"
)

// BumpLastContact menggerakkan last_contact_date jemaat MAJU ke contactDate.
// Guard di SQL: tanggal yang lebih lama dari nilai tersimpan diabaikan, jadi
// menyelesaikan item lama tidak pernah memundurkan status engagement.
func BumpLastContact(tx *gorm.DB, memberID uuid.UUID, contactDate time.Time) error {
	d := datatypes.Date(contactDate)
	return tx.Model(&model.MemberModel{}).
		Where("member_id = ? AND (member_last_contact_date IS NULL OR member_last_contact_date < ?)",
			memberID, d).
		Update("member_last_contact_date", d).Error
}
