// file: internals/features/finance/aid_schedules/dto/aid_schedule_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func baseDTO(freq string) AidScheduleCreateDTO {
	return AidScheduleCreateDTO{
		AidScheduleMemberID:  "6ba7b810-9dad-41d1-80b4-00c04fd430c8",
		AidScheduleFrequency: freq,
		AidScheduleStartDate: "2025-01-01",
		AidScheduleAmountIDR: 500_000,
	}
}

func TestValidateFrequencyFields_Weekly(t *testing.T) {
	in := baseDTO("weekly")
	errs := in.ValidateFrequencyFields()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "aid_schedule_day_of_week")

	in.AidScheduleDayOfWeek = intp(5)
	assert.Nil(t, in.ValidateFrequencyFields())

	in.AidScheduleDayOfMonth = intp(15)
	assert.Contains(t, in.ValidateFrequencyFields(), "aid_schedule_day_of_month")
}

func TestValidateFrequencyFields_Monthly(t *testing.T) {
	in := baseDTO("monthly")
	require.Contains(t, in.ValidateFrequencyFields(), "aid_schedule_day_of_month")

	in.AidScheduleDayOfMonth = intp(31)
	assert.Nil(t, in.ValidateFrequencyFields())
}

func TestValidateFrequencyFields_Annually(t *testing.T) {
	in := baseDTO("annually")
	require.Contains(t, in.ValidateFrequencyFields(), "aid_schedule_month_of_year")

	in.AidScheduleMonthOfYear = intp(2)
	assert.Nil(t, in.ValidateFrequencyFields())

	in.AidScheduleDayOfWeek = intp(1)
	assert.Contains(t, in.ValidateFrequencyFields(), "aid_schedule_day_of_week")
}

func TestValidateFrequencyFields_OneTimeForbidsAll(t *testing.T) {
	in := baseDTO("one_time")
	assert.Nil(t, in.ValidateFrequencyFields())

	in.AidScheduleDayOfWeek = intp(1)
	in.AidScheduleDayOfMonth = intp(15)
	in.AidScheduleMonthOfYear = intp(6)
	errs := in.ValidateFrequencyFields()
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
}
