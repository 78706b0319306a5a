// file: internals/features/campus/care_settings/service/snapshot.go
package service

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	"faithtracker_backend/internals/features/campus/care_settings/model"
)

// TaskType mengikuti jenis tugas care yang punya ambang write-off sendiri.
type TaskType string

const (
	TaskBirthday     TaskType = "birthday"
	TaskGriefSupport TaskType = "grief_support"
	TaskAccident     TaskType = "accident_illness"
	TaskFinancialAid TaskType = "financial_aid"
)

// Snapshot adalah potret konfigurasi care satu campus yang IMMUTABLE.
// Reader tidak pernah melihat konfigurasi setengah-update: cache menukar
// snapshot utuh secara atomik saat konfigurasi berubah.
type Snapshot struct {
	CampusID uuid.UUID
	Timezone string
	Location *time.Location

	AtRiskDays   int
	InactiveDays int

	writeoffDays map[TaskType]int

	GriefOffsets    []int
	AccidentOffsets []int

	LoadedAt time.Time
}

// WriteoffDays: ambang write-off (hari) untuk jenis tugas tsb. 0 = tidak pernah
// disembunyikan. Jenis yang tidak dikenal diperlakukan 0 (selalu tampil).
func (s *Snapshot) WriteoffDays(task TaskType) int {
	if s == nil || s.writeoffDays == nil {
		return 0
	}
	return s.writeoffDays[task]
}

/* ===============================
   Validasi konfigurasi
=================================*/

var (
	ErrSettingsNotFound = errors.New("care settings not found")
)

// ValidateThresholds menolak ambang engagement yang terbalik/invalid.
func ValidateThresholds(atRiskDays, inactiveDays int) error {
	if atRiskDays <= 0 {
		return fmt.Errorf("at_risk_days harus > 0 (dapat %d)", atRiskDays)
	}
	if inactiveDays <= atRiskDays {
		return fmt.Errorf("inactive_days (%d) harus > at_risk_days (%d)", inactiveDays, atRiskDays)
	}
	return nil
}

// ValidateOffsets menolak tabel offset yang panjangnya salah, negatif, atau
// tidak menaik ketat. Dipanggil di load & update: engine tidak pernah jalan
// dengan konfigurasi inkonsisten.
func ValidateOffsets(offsets []int64, wantLen int) error {
	if len(offsets) != wantLen {
		return fmt.Errorf("offset harus %d nilai (dapat %d)", wantLen, len(offsets))
	}
	prev := int64(-1)
	for i, off := range offsets {
		if off < 0 {
			return fmt.Errorf("offset[%d] negatif: %d", i, off)
		}
		if off <= prev {
			return fmt.Errorf("offset harus menaik ketat: offset[%d]=%d ≤ %d", i, off, prev)
		}
		prev = off
	}
	return nil
}

// BuildSnapshot memvalidasi pasangan campus+settings lalu membangun snapshot
// immutable. Dipanggil cache saat reload; juga titik masuk untuk test.
func BuildSnapshot(campus campusModel.CampusModel, cs model.CareSettingModel) (*Snapshot, error) {
	if err := ValidateThresholds(cs.CareSettingAtRiskDays, cs.CareSettingInactiveDays); err != nil {
		return nil, err
	}
	if err := ValidateOffsets(cs.CareSettingGriefOffsets, 6); err != nil {
		return nil, fmt.Errorf("grief offsets: %w", err)
	}
	if err := ValidateOffsets(cs.CareSettingAccidentOffsets, 3); err != nil {
		return nil, fmt.Errorf("accident offsets: %w", err)
	}
	loc, err := time.LoadLocation(campus.CampusTimezone)
	if err != nil {
		return nil, fmt.Errorf("timezone campus tidak valid: %q", campus.CampusTimezone)
	}

	return &Snapshot{
		CampusID:     campus.CampusID,
		Timezone:     campus.CampusTimezone,
		Location:     loc,
		AtRiskDays:   cs.CareSettingAtRiskDays,
		InactiveDays: cs.CareSettingInactiveDays,
		writeoffDays: map[TaskType]int{
			TaskBirthday:     cs.CareSettingWriteoffBirthdayDays,
			TaskGriefSupport: cs.CareSettingWriteoffGriefDays,
			TaskAccident:     cs.CareSettingWriteoffAccidentDays,
			TaskFinancialAid: cs.CareSettingWriteoffFinancialAidDays,
		},
		GriefOffsets:    toInts(cs.CareSettingGriefOffsets),
		AccidentOffsets: toInts(cs.CareSettingAccidentOffsets),
		LoadedAt:        time.Now(),
	}, nil
}

func toInts(a []int64) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}
	return out
}

/* ===============================
   Cache snapshot per campus
=================================*/

// Cache menyimpan map[campusID]*Snapshot di atomic.Value. Pembaca ambil map
// saat itu tanpa lock; penulis meng-copy map lama, menukar utuh (copy-on-write).
type Cache struct {
	db *gorm.DB
	mu sync.Mutex   // serialisasi penulis
	v  atomic.Value // map[uuid.UUID]*Snapshot
}

func NewCache(db *gorm.DB) *Cache {
	c := &Cache{db: db}
	c.v.Store(map[uuid.UUID]*Snapshot{})
	return c
}

func (c *Cache) current() map[uuid.UUID]*Snapshot {
	return c.v.Load().(map[uuid.UUID]*Snapshot)
}

// Get mengembalikan snapshot campus; load dari DB saat cache miss.
func (c *Cache) Get(campusID uuid.UUID) (*Snapshot, error) {
	if snap, ok := c.current()[campusID]; ok {
		return snap, nil
	}
	return c.reload(campusID)
}

// Invalidate dipanggil setelah update konfigurasi; pembaca berikutnya memuat
// snapshot baru yang sudah tervalidasi.
func (c *Cache) Invalidate(campusID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.current()
	next := make(map[uuid.UUID]*Snapshot, len(old))
	for k, s := range old {
		if k != campusID {
			next[k] = s
		}
	}
	c.v.Store(next)
}

func (c *Cache) reload(campusID uuid.UUID) (*Snapshot, error) {
	var campus campusModel.CampusModel
	if err := c.db.First(&campus, "campus_id = ? AND campus_deleted_at IS NULL", campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	var cs model.CareSettingModel
	if err := c.db.First(&cs, "care_setting_campus_id = ? AND care_setting_deleted_at IS NULL", campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	snap, err := BuildSnapshot(campus, cs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.current()
	next := make(map[uuid.UUID]*Snapshot, len(old)+1)
	for k, s := range old {
		next[k] = s
	}
	next[campusID] = snap
	c.v.Store(next)
	return snap, nil
}
