package seed

import (
	"testing"
	"time"

	"frontdesk/internal/frontdesk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	snap := Demo(now, frontdesk.DefaultPlans())

	assert.Len(t, snap.Plans, 3)
	assert.Len(t, snap.Members, 12)
	assert.Len(t, snap.Payments, 16)
	assert.Len(t, snap.CheckIns, 12)

	open := 0
	for _, c := range snap.CheckIns {
		if c.Open() {
			open++
		}
	}
	assert.Equal(t, 4, open)

	seen := make(map[string]bool)
	for _, p := range snap.Payments {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	for _, c := range snap.CheckIns {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestDemoDatesRelativeToNow(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	snap := Demo(now, frontdesk.DefaultPlans())

	marco := snap.Members[0]
	require.Equal(t, "m-1", marco.ID)
	assert.Equal(t, today.AddDate(0, 0, -10), marco.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 20), marco.EndDate)

	bea := snap.Members[3]
	require.Equal(t, "m-4", bea.ID)
	assert.Equal(t, frontdesk.StatusExpired, bea.Status)
	assert.Equal(t, today.AddDate(0, 0, -5), bea.EndDate)
}

func TestDemoLoadsIntoStore(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	store := frontdesk.NewStore(Demo(now, frontdesk.DefaultPlans()), func() time.Time { return now })

	assert.Equal(t, 8, store.ActiveCount())
	assert.Equal(t, 3, store.ExpiredCount())
	assert.Equal(t, 1, store.FrozenCount())
	assert.Len(t, store.CheckedInMembers(), 4)
	assert.Equal(t, 7, store.TodayVisitCount())
	assert.Equal(t, int64(10000), store.TodayRevenue())

	m, ok := store.FindMemberByContact("09251234567")
	require.True(t, ok)
	assert.Equal(t, "Gabriel Tan", m.Name)
	assert.True(t, store.IsCheckedIn(m.ID))
}
