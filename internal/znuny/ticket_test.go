package znuny

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTicketDefaults(t *testing.T) {
	ticket, err := buildTicket("Printer on fire", "user@example.com", nil, Queue{Name: "Helpdesk"})
	require.NoError(t, err)

	assert.Equal(t, "unlock", ticket["LockState"])
	assert.Equal(t, 2, ticket["PriorityID"])
	assert.Equal(t, "new", ticket["State"])
	assert.Equal(t, "Printer on fire", ticket["Title"])
	assert.Equal(t, "user@example.com", ticket["CustomerUser"])
}

func TestBuildTicketExtraOverridesDefaults(t *testing.T) {
	ticket, err := buildTicket("T", "c", map[string]interface{}{
		"PriorityID": 5,
		"State":      "pending reminder",
		"TypeID":     3,
	}, Queue{Name: "Helpdesk"})
	require.NoError(t, err)

	assert.Equal(t, 5, ticket["PriorityID"])
	assert.Equal(t, "pending reminder", ticket["State"])
	assert.Equal(t, 3, ticket["TypeID"])
	assert.Equal(t, "unlock", ticket["LockState"])
}

func TestBuildTicketTitleAndCustomerNotOverridable(t *testing.T) {
	ticket, err := buildTicket("Real title", "real@example.com", map[string]interface{}{
		"Title":        "fake",
		"CustomerUser": "fake@example.com",
	}, Queue{Name: "Helpdesk"})
	require.NoError(t, err)

	assert.Equal(t, "Real title", ticket["Title"])
	assert.Equal(t, "real@example.com", ticket["CustomerUser"])
}

func TestBuildTicketQueueExclusive(t *testing.T) {
	byId, err := buildTicket("T", "c", nil, Queue{Id: 42})
	require.NoError(t, err)
	assert.Equal(t, 42, byId["QueueID"])
	assert.NotContains(t, byId, "Queue")

	byName, err := buildTicket("T", "c", nil, Queue{Name: "Postmaster"})
	require.NoError(t, err)
	assert.Equal(t, "Postmaster", byName["Queue"])
	assert.NotContains(t, byName, "QueueID")

	// id wins when both are set
	both, err := buildTicket("T", "c", nil, Queue{Id: 7, Name: "Postmaster"})
	require.NoError(t, err)
	assert.Equal(t, 7, both["QueueID"])
	assert.NotContains(t, both, "Queue")
}

func TestBuildTicketEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		_, err := buildTicket(title, "c", nil, Queue{Name: "Helpdesk"})
		require.Error(t, err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "title", vErr.Field)
	}
}
