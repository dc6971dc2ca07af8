package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Decidable(t *testing.T) {
	assert.True(t, StatusApproved.Decidable())
	assert.True(t, StatusRejected.Decidable())
	assert.False(t, StatusPending.Decidable())
	assert.False(t, Status("").Decidable())
	assert.False(t, Status("approved").Decidable()) // case sensitive
}

func TestValidSection(t *testing.T) {
	for _, s := range Sections {
		assert.True(t, ValidSection(s))
	}
	assert.False(t, ValidSection("final_decision"))
	assert.False(t, ValidSection("KYC_DOCUMENTS"))
	assert.False(t, ValidSection(""))
}
