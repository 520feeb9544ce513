package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, true},
		{"processing to ready", OrderStatusProcessing, OrderStatusReady, true},
		{"ready to completed", OrderStatusReady, OrderStatusCompleted, true},

		// 飛び越しは不可
		{"pending to ready", OrderStatusPending, OrderStatusReady, false},
		{"pending to completed", OrderStatusPending, OrderStatusCompleted, false},
		{"processing to completed", OrderStatusProcessing, OrderStatusCompleted, false},

		// 逆行は不可
		{"processing to pending", OrderStatusProcessing, OrderStatusPending, false},
		{"completed to ready", OrderStatusCompleted, OrderStatusReady, false},

		// cancelled は pending / processing からのみ
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"ready to cancelled", OrderStatusReady, OrderStatusCancelled, false},
		{"completed to cancelled", OrderStatusCompleted, OrderStatusCancelled, false},

		// 終端からは動けない
		{"cancelled to processing", OrderStatusCancelled, OrderStatusProcessing, false},
		{"completed to completed", OrderStatusCompleted, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("processing")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusProcessing, s)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}
