package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cabinetFixture struct {
	Name       string `validate:"required"`
	RackUnits  int    `validate:"required,min=1,max=100"`
	Attachment string `validate:"required,cabinet_attachment"`
	Fasteners  string `validate:"required,cabinet_fastener"`
}

type networkFixture struct {
	Speed        string `validate:"required,network_speed"`
	Interconnect string `validate:"required,network_interconnect"`
}

func TestValidateStructValid(t *testing.T) {
	v := New()

	result := v.ValidateStruct(cabinetFixture{
		Name:       "cab-1",
		RackUnits:  42,
		Attachment: "CAGE_NUT_95",
		Fasteners:  "UNF_10_32",
	})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateStructEnumRejected(t *testing.T) {
	v := New()

	result := v.ValidateStruct(cabinetFixture{
		Name:       "cab-1",
		RackUnits:  42,
		Attachment: "DUCT_TAPE",
		Fasteners:  "UNF_10_32",
	})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "attachment", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "CAGE_NUT_95")
	assert.Equal(t, "DUCT_TAPE", result.Errors[0].Value)
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	v := New()

	result := v.ValidateStruct(cabinetFixture{RackUnits: 200})
	require.False(t, result.Valid)

	fields := make(map[string]string)
	for _, e := range result.Errors {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be at most 100", fields["rack_units"])
	assert.Contains(t, fields, "attachment")
	assert.Contains(t, fields, "fasteners")
}

func TestNetworkEnums(t *testing.T) {
	v := New()

	ok := v.ValidateStruct(networkFixture{Speed: "TEN_GIGABIT", Interconnect: "TWINAX"})
	assert.True(t, ok.Valid)

	bad := v.ValidateStruct(networkFixture{Speed: "WARP", Interconnect: "TWINAX"})
	require.False(t, bad.Valid)
	assert.Equal(t, "speed", bad.Errors[0].Field)
}
