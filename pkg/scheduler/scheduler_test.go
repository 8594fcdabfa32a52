package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Baptiste68/recette/pkg/expiry"
)

func TestFormatAlert(t *testing.T) {
	status := expiry.Status{
		Expired: []string{"lait"},
		SoonExpiring: []expiry.SoonItem{
			{Name: "yaourt", DaysLeft: 0},
			{Name: "poulet", DaysLeft: 1},
			{Name: "jambon", DaysLeft: 3},
		},
	}

	message := FormatAlert("alice", status)

	assert.Contains(t, message, "alice")
	assert.Contains(t, message, "- lait")
	assert.Contains(t, message, "yaourt (today)")
	assert.Contains(t, message, "poulet (tomorrow)")
	assert.Contains(t, message, "jambon (in 3 days)")
}

func TestFormatAlertOnlyExpired(t *testing.T) {
	status := expiry.Status{Expired: []string{"lait"}}

	message := FormatAlert("bob", status)

	assert.Contains(t, message, "Expired:")
	assert.NotContains(t, message, "Expiring soon:")
}
