// file: internals/features/care/care_events/dto/care_event_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func i64p(n int64) *int64   { return &n }

func baseDTO(eventType string) CareEventCreateDTO {
	return CareEventCreateDTO{
		CareEventMemberID: "6ba7b810-9dad-41d1-80b4-00c04fd430c8",
		CareEventType:     eventType,
		CareEventDate:     "2025-06-01",
	}
}

func TestValidateVariant_GriefLoss(t *testing.T) {
	in := baseDTO("grief_loss")
	errs := in.ValidateVariant()
	require.NotNil(t, errs, "relasi & nama almarhum wajib")
	assert.Contains(t, errs, "care_event_grief_relationship")
	assert.Contains(t, errs, "care_event_deceased_name")

	in.CareEventGriefRelationship = strp("ayah")
	in.CareEventDeceasedName = strp("Bpk. Santoso")
	assert.Nil(t, in.ValidateVariant())

	// kolom varian jenis lain terlarang
	in.CareEventHospitalName = strp("RS Sehat")
	errs = in.ValidateVariant()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "care_event_hospital_name")
}

func TestValidateVariant_AccidentIllness(t *testing.T) {
	in := baseDTO("accident_illness")
	errs := in.ValidateVariant()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "care_event_hospital_name")

	in.CareEventHospitalName = strp("RS Harapan")
	in.CareEventDiagnosis = strp("patah tulang")
	assert.Nil(t, in.ValidateVariant())

	in.CareEventAidAmountIDR = i64p(1_000_000)
	assert.Contains(t, in.ValidateVariant(), "care_event_aid_amount_idr")
}

func TestValidateVariant_FinancialAid(t *testing.T) {
	in := baseDTO("financial_aid")
	errs := in.ValidateVariant()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "care_event_aid_amount_idr")

	in.CareEventAidAmountIDR = i64p(750_000)
	assert.Nil(t, in.ValidateVariant())
}

func TestValidateVariant_PlainTypesForbidVariantColumns(t *testing.T) {
	for _, typ := range []string{"birthday", "childbirth", "new_house", "regular_contact"} {
		in := baseDTO(typ)
		assert.Nil(t, in.ValidateVariant(), typ)

		in.CareEventAidAmountIDR = i64p(10_000)
		assert.NotNil(t, in.ValidateVariant(), typ)
	}
}
