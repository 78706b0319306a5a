// file: internals/features/dashboard/digest/scheduler/daily.go
package scheduler

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	dailyController "faithtracker_backend/internals/features/dashboard/daily/controller"
	"faithtracker_backend/internals/features/dashboard/digest/service"
)

// Jam lokal campus saat digest dikirim.
const digestHour = 6

// StartDailyDigestScheduler menyalakan goroutine yang tiap jam memeriksa
// campus mana yang sudah masuk jam digest MENURUT TIMEZONE CAMPUS-NYA, lalu
// mengirim ringkasan sekali per hari-campus. Satu kiriman gagal tidak
// menghentikan campus lain.
func StartDailyDigestScheduler(db *gorm.DB, cache *careSettingService.Cache) {
	sender := service.LogWaSender{}
	lastSent := map[uuid.UUID]string{} // campusID → tanggal lokal terakhir dikirim

	go func() {
		log.Println("[DIGEST] scheduler aktif (cek tiap jam)")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			runDigestRound(db, cache, sender, lastSent)
			<-ticker.C
		}
	}()
}

func runDigestRound(db *gorm.DB, cache *careSettingService.Cache, sender service.WaSender, lastSent map[uuid.UUID]string) {
	var campuses []campusModel.CampusModel
	if err := db.Where("campus_deleted_at IS NULL").Find(&campuses).Error; err != nil {
		log.Printf("[DIGEST] gagal memuat daftar campus: %v", err)
		return
	}

	for _, campus := range campuses {
		if campus.CampusWhatsappNumber == nil {
			continue
		}

		snap, err := cache.Get(campus.CampusID)
		if err != nil {
			log.Printf("[DIGEST] campus=%s lewati (snapshot: %v)", campus.CampusID, err)
			continue
		}

		now := time.Now().In(snap.Location)
		localDate := now.Format("2006-01-02")
		if now.Hour() < digestHour || lastSent[campus.CampusID] == localDate {
			continue
		}

		view, err := dailyController.LoadDailyView(db, cache, campus.CampusID, now)
		if err != nil {
			log.Printf("[DIGEST] campus=%s gagal menyusun view: %v", campus.CampusID, err)
			continue
		}

		text := service.BuildDigestText(view)
		if err := sender.Send(*campus.CampusWhatsappNumber, text); err != nil {
			log.Printf("[DIGEST] campus=%s gagal kirim: %v", campus.CampusID, err)
			continue
		}
		lastSent[campus.CampusID] = localDate
	}
}
