package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatusStorageRoundTrip(t *testing.T) {
	for _, status := range AllAppointmentStatuses {
		got, err := AppointmentStatusFromStorage(status.Storage())
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := AppointmentStatusFromStorage("EXPLODED")
	require.Error(t, err)
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = ParseAppointmentStatus(" In_Service ")
	require.NoError(t, err)
	assert.Equal(t, StatusInService, status)

	_, err = ParseAppointmentStatus("unknown")
	require.Error(t, err)
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusInService.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}
