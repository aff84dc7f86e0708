package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		priority Priority
		wantErr  bool
	}{
		{"valid ticket", "VPN not working", PriorityHigh, false},
		{"empty subject", "", PriorityHigh, true},
		{"whitespace subject", "   ", PriorityLow, true},
		{"invalid priority", "Printer jam", Priority("urgent"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.subject, "details", tt.priority, "alice", "")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tk)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusOpen, tk.Status())
			assert.Nil(t, tk.ResolvedAt())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("closing stamps resolution time", func(t *testing.T) {
		tk, err := NewTicket("Laptop replacement", "", PriorityMedium, "alice", "bob")
		require.NoError(t, err)

		err = tk.ChangeStatus(StatusClosed)
		require.NoError(t, err)

		assert.Equal(t, StatusClosed, tk.Status())
		require.NotNil(t, tk.ResolvedAt())
		assert.False(t, tk.ResolvedAt().Before(tk.CreatedAt()))
	})

	t.Run("reopening clears resolution time", func(t *testing.T) {
		tk, err := NewTicket("Laptop replacement", "", PriorityMedium, "alice", "bob")
		require.NoError(t, err)

		require.NoError(t, tk.ChangeStatus(StatusClosed))
		require.NotNil(t, tk.ResolvedAt())

		require.NoError(t, tk.ChangeStatus(StatusOpen))
		assert.Equal(t, StatusOpen, tk.Status())
		assert.Nil(t, tk.ResolvedAt())
	})

	t.Run("closing an already closed ticket keeps the original stamp", func(t *testing.T) {
		tk, err := NewTicket("Monitor flicker", "", PriorityLow, "alice", "")
		require.NoError(t, err)

		require.NoError(t, tk.ChangeStatus(StatusClosed))
		first := *tk.ResolvedAt()

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, tk.ChangeStatus(StatusClosed))
		assert.Equal(t, first, *tk.ResolvedAt())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		tk, err := NewTicket("Monitor flicker", "", PriorityLow, "alice", "")
		require.NoError(t, err)

		err = tk.ChangeStatus(Status("done"))
		assert.Error(t, err)
		assert.Equal(t, StatusOpen, tk.Status())
	})
}

func TestTicket_ChangePriority(t *testing.T) {
	tk, err := NewTicket("Keyboard broken", "", PriorityLow, "alice", "")
	require.NoError(t, err)

	require.NoError(t, tk.ChangePriority(PriorityCritical))
	assert.Equal(t, PriorityCritical, tk.Priority())

	err = tk.ChangePriority(Priority("asap"))
	assert.Error(t, err)
	assert.Equal(t, PriorityCritical, tk.Priority())
}
