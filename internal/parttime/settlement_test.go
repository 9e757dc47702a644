package parttime_test

import (
	"testing"
	"time"

	"go-staffpay/internal/parttime"

	"github.com/stretchr/testify/assert"
)

func TestSettlementKeys(t *testing.T) {
	assert.Equal(t, "2025-01-W1", parttime.SettlementKey(2025, time.January, 0))
	assert.Equal(t, []string{"2025-01-W1", "2025-01-W2", "2025-01-W3", "2025-01-W4", "2025-01-W5"}, parttime.KeysForMonth(2025, time.January))
	assert.Len(t, parttime.KeysForMonth(2025, time.February), 4)

	assert.Equal(t,
		[]string{"2025-01-W5", "2025-02-W1", "2025-02-W2"},
		parttime.KeysForRange(day(2025, time.February, 2), day(2025, time.February, 10)),
	)
	assert.Nil(t, parttime.KeysForRange(day(2025, time.February, 10), day(2025, time.February, 2)))

	assert.Equal(t, []string{"2025-03-W2"}, parttime.WeekPeriod(2025, time.March, 1).SettlementKeys())
}

func TestStatusOf(t *testing.T) {
	keys := parttime.KeysForMonth(2025, time.February)

	none := parttime.StatusOf(keys, map[string]bool{})
	assert.False(t, none.FullySettled)
	assert.False(t, none.PartiallySettled)
	assert.True(t, none.ToggleTarget())

	partial := parttime.StatusOf(keys, map[string]bool{keys[0]: true, keys[2]: true})
	assert.False(t, partial.FullySettled)
	assert.True(t, partial.PartiallySettled)
	assert.Equal(t, []string{keys[0], keys[2]}, partial.SettledKeys)
	assert.True(t, partial.ToggleTarget(), "a partially settled month toggles to fully settled")

	all := map[string]bool{}
	for _, k := range keys {
		all[k] = true
	}
	full := parttime.StatusOf(keys, all)
	assert.True(t, full.FullySettled)
	assert.False(t, full.PartiallySettled)
	assert.False(t, full.ToggleTarget())

	assert.False(t, parttime.StatusOf(nil, all).FullySettled)
}
