package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb)
}

func TestGetSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	type row struct {
		ID string `json:"id"`
	}
	c.SetJSON(ctx, Key(KeyStaffs, "list"), []row{{ID: "1"}, {ID: "2"}}, TTLShort)

	var got []row
	require.True(t, c.GetJSON(ctx, Key(KeyStaffs, "list"), &got))
	assert.Len(t, got, 2)
}

func TestMissReturnsFalse(t *testing.T) {
	c := newTestCache(t)
	var got []string
	assert.False(t, c.GetJSON(context.Background(), Key(KeyStaffs, "nope"), &got))
}

func TestDistinctTuplesAreIndependent(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	c.SetJSON(ctx, Key(KeyReportDetails, "r1", "totalCustomers", "direct", "-"), []string{"a"}, TTLShort)
	c.SetJSON(ctx, Key(KeyReportDetails, "r1", "totalOrderCheck", "direct", "-"), []string{"b"}, TTLShort)

	var got []string
	require.True(t, c.GetJSON(ctx, Key(KeyReportDetails, "r1", "totalCustomers", "direct", "-"), &got))
	assert.Equal(t, []string{"a"}, got)
	require.True(t, c.GetJSON(ctx, Key(KeyReportDetails, "r1", "totalOrderCheck", "direct", "-"), &got))
	assert.Equal(t, []string{"b"}, got)
}

func TestInvalidateRemovesWholeGroup(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	c.SetJSON(ctx, Key(KeyGroups, "list"), "groups", TTLShort)
	c.SetJSON(ctx, Key(KeyGroupDetail, "g1"), "detail", TTLShort)
	c.SetJSON(ctx, Key(KeyStaffs, "list", "1", "20"), "staffs", TTLShort)
	c.SetJSON(ctx, Key(KeyAccounts, "list"), "accounts", TTLShort)

	c.Invalidate(ctx, KeyGroups, Key(KeyGroupDetail, "g1"), KeyStaffs)

	var got string
	assert.False(t, c.GetJSON(ctx, Key(KeyGroups, "list"), &got))
	assert.False(t, c.GetJSON(ctx, Key(KeyGroupDetail, "g1"), &got))
	assert.False(t, c.GetJSON(ctx, Key(KeyStaffs, "list", "1", "20"), &got))

	// untouched group survives
	require.True(t, c.GetJSON(ctx, Key(KeyAccounts, "list"), &got))
	assert.Equal(t, "accounts", got)
}
