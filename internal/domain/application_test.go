package domain_test

import (
	"testing"

	"recruitment-portal-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"unhandled", "accepted", "rejected"} {
		status, err := domain.ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, domain.Status(valid), status)
	}

	for _, invalid := range []string{"", "pending", "ACCEPTED", "Unhandled"} {
		_, err := domain.ParseStatus(invalid)
		assert.Error(t, err, "status %q should not parse", invalid)
	}
}

func TestCanEdit(t *testing.T) {
	assert.True(t, domain.CanEdit(nil), "no application yet means editable")
	assert.True(t, domain.CanEdit(&domain.Application{Status: domain.StatusUnhandled}))
	assert.False(t, domain.CanEdit(&domain.Application{Status: domain.StatusAccepted}))
	// Rejected is final for the profile: delete and resubmit to change it
	assert.False(t, domain.CanEdit(&domain.Application{Status: domain.StatusRejected}))
}

func TestCanDelete(t *testing.T) {
	assert.False(t, domain.CanDelete(nil), "nothing to delete")
	assert.True(t, domain.CanDelete(&domain.Application{Status: domain.StatusUnhandled}))
	assert.True(t, domain.CanDelete(&domain.Application{Status: domain.StatusRejected}))
	assert.False(t, domain.CanDelete(&domain.Application{Status: domain.StatusAccepted}))
}
