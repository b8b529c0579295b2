package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	accraMall := models.NewLocation("Accra Mall", "Spintex Rd, Accra", 5.6219, -0.1733)
	kotoka := models.NewLocation("Kotoka Airport", "Airport Rd, Accra", 5.6052, -0.1668)

	d := CalculateDistance(accraMall, kotoka)

	assert.InDelta(t, 1.98, d, 0.05)
	assert.Equal(t, 0.0, CalculateDistance(accraMall, accraMall))
	assert.InDelta(t, d, CalculateDistance(kotoka, accraMall), 1e-9)
}

func TestCalculateDistance_Antipodal(t *testing.T) {
	a := models.NewLocation("a", "", 0, 0)
	b := models.NewLocation("b", "", 0, 180)

	assert.InDelta(t, 20015.09, CalculateDistance(a, b), 0.1)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 12.35, RoundTo(12.3456, 2))
	assert.Equal(t, 3.0, RoundTo(2.96, 0))
}

func TestSameCell(t *testing.T) {
	a := models.NewLocation("a", "", 5.6037, -0.1870)
	near := models.NewLocation("near", "", 5.6040, -0.1872)
	far := models.NewLocation("far", "", 6.6885, -1.6244)

	assert.True(t, SameCell(a, near))
	assert.False(t, SameCell(a, far))
}

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := GenerateVerificationCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.True(t, IsValidVerificationCode(code))
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsValidVerificationCode(t *testing.T) {
	assert.True(t, IsValidVerificationCode("004213"))
	assert.False(t, IsValidVerificationCode("12345"))
	assert.False(t, IsValidVerificationCode("12a456"))
	assert.False(t, IsValidVerificationCode("1234567"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ko***@troski.app", MaskEmail("kofi1@troski.app"))
	assert.Equal(t, "ab@troski.app", MaskEmail("ab@troski.app"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
