package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-storefront/internal/service"
)

func TestToastAutoDismiss(t *testing.T) {
	hub := service.NewToastHub(30 * time.Millisecond)

	hub.Success("saved")
	hub.Error("broke")

	active := hub.Active()
	require.Len(t, active, 2)
	assert.Equal(t, service.ToastSuccess, active[0].Level)
	assert.Equal(t, "saved", active[0].Message)
	assert.NotEmpty(t, active[0].ID)

	assert.Eventually(t, func() bool {
		return len(hub.Active()) == 0
	}, time.Second, 10*time.Millisecond, "toasts dismiss themselves after the ttl")
}
