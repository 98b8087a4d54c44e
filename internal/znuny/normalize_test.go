package znuny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeys(t *testing.T) {
	in := map[string]interface{}{
		"TicketID": float64(5),
		"Ticket": []interface{}{
			map[string]interface{}{"CustomerID": "x"},
		},
	}

	want := map[string]interface{}{
		"ticketId": float64(5),
		"ticket": []interface{}{
			map[string]interface{}{"customerId": "x"},
		},
	}

	assert.Equal(t, want, normalize(in))
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TicketID", "ticketId"},
		{"CustomerID", "customerId"},
		{"TicketNumber", "ticketNumber"},
		{"SessionID", "sessionId"},
		{"Queue", "queue"},
		{"ID", "iD"}, // no lowercase letter before ID, suffix untouched
		{"OrigHeader", "origHeader"},
		{"DynamicField_TicketID", "dynamicField_TicketId"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in), "key %q", tt.in)
	}
}

func TestNormalizeDeepNesting(t *testing.T) {
	in := map[string]interface{}{
		"Article": map[string]interface{}{
			"Attachment": []interface{}{
				[]interface{}{
					map[string]interface{}{"FileID": float64(1)},
				},
			},
		},
	}

	out, ok := normalize(in).(map[string]interface{})
	assert.True(t, ok)

	article := out["article"].(map[string]interface{})
	outer := article["attachment"].([]interface{})
	inner := outer[0].([]interface{})
	assert.Equal(t, map[string]interface{}{"fileId": float64(1)}, inner[0])
}

func TestNormalizeScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "x", normalize("x"))
	assert.Equal(t, float64(3), normalize(float64(3)))
	assert.Equal(t, true, normalize(true))
	assert.Nil(t, normalize(nil))
}
