package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	l, err := c.Get(ctx, "/dashboard/invoices", "page=1")
	require.NoError(t, err)
	assert.False(t, l.Hit)

	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "page=1", l.Generation, []byte("<html>1</html>")))

	l, err = c.Get(ctx, "/dashboard/invoices", "page=1")
	require.NoError(t, err)
	assert.True(t, l.Hit)
	assert.Equal(t, "<html>1</html>", string(l.Page))

	l, _ = c.Get(ctx, "/dashboard/invoices", "page=2")
	assert.False(t, l.Hit, "keys are independent")
}

func TestMemoryCache_RevalidateDropsOnlyThatPath(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "a", 0, []byte("a")))
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "b", 0, []byte("b")))
	require.NoError(t, c.Set(ctx, "/dashboard", "", 0, []byte("overview")))

	require.NoError(t, c.Revalidate(ctx, "/dashboard/invoices"))

	l, _ := c.Get(ctx, "/dashboard/invoices", "a")
	assert.False(t, l.Hit)
	assert.Equal(t, int64(1), l.Generation)
	l, _ = c.Get(ctx, "/dashboard/invoices", "b")
	assert.False(t, l.Hit)
	l, _ = c.Get(ctx, "/dashboard", "")
	assert.True(t, l.Hit)
	assert.Equal(t, 1, c.Len(), "revalidated pages are freed")

	// fresh writes after revalidation are served again
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "a", 1, []byte("a2")))
	l, _ = c.Get(ctx, "/dashboard/invoices", "a")
	assert.True(t, l.Hit)
	assert.Equal(t, "a2", string(l.Page))
}

func TestMemoryCache_DropsWriteFromBeforeRevalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	miss, err := c.Get(ctx, "/dashboard/invoices", "page=1")
	require.NoError(t, err)

	// a mutation lands while the page is being rendered
	require.NoError(t, c.Revalidate(ctx, "/dashboard/invoices"))
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "page=1", miss.Generation, []byte("old rows")))

	l, err := c.Get(ctx, "/dashboard/invoices", "page=1")
	require.NoError(t, err)
	assert.False(t, l.Hit)
	assert.Zero(t, c.Len())
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "/p", "k", 0, []byte("v")))

	now = now.Add(59 * time.Second)
	l, _ := c.Get(ctx, "/p", "k")
	assert.True(t, l.Hit)

	now = now.Add(time.Second)
	l, _ = c.Get(ctx, "/p", "k")
	assert.False(t, l.Hit)
	assert.Zero(t, c.Len())
}

func TestMemoryCache_BoundedByMaxEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Millisecond, WithMaxEntries(100))
	c.now = func() time.Time { return now }

	for i := 0; i < 10000; i++ {
		now = now.Add(time.Microsecond)
		require.NoError(t, c.Set(ctx, "/dashboard/invoices", fmt.Sprintf("query=q%d", i), 0, []byte("page")))
	}
	assert.LessOrEqual(t, c.Len(), 100)

	require.NoError(t, c.Revalidate(ctx, "/dashboard/invoices"))
	assert.Zero(t, c.Len())
}

func TestMemoryCache_SweepsExpiredBeforeEvicting(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute, WithMaxEntries(3))
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "/p", "expired-1", 0, []byte("1")))
	require.NoError(t, c.Set(ctx, "/p", "expired-2", 0, []byte("2")))
	now = now.Add(30 * time.Second)
	require.NoError(t, c.Set(ctx, "/p", "live", 0, []byte("3")))

	now = now.Add(45 * time.Second)
	require.NoError(t, c.Set(ctx, "/p", "new", 0, []byte("4")))

	assert.Equal(t, 2, c.Len())
	l, _ := c.Get(ctx, "/p", "live")
	assert.True(t, l.Hit)
	l, _ = c.Get(ctx, "/p", "new")
	assert.True(t, l.Hit)
}

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(0, WithMaxEntries(2))
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "/p", "a", 0, []byte("a")))
	now = now.Add(time.Second)
	require.NoError(t, c.Set(ctx, "/p", "b", 0, []byte("b")))
	now = now.Add(time.Second)
	require.NoError(t, c.Set(ctx, "/p", "c", 0, []byte("c")))

	assert.Equal(t, 2, c.Len())
	l, _ := c.Get(ctx, "/p", "a")
	assert.False(t, l.Hit)
	l, _ = c.Get(ctx, "/p", "c")
	assert.True(t, l.Hit)
}

func TestMemoryCache_SetCopiesPage(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "/p", "k", 0, buf))
	buf[0] = 'x'

	l, _ := c.Get(ctx, "/p", "k")
	assert.Equal(t, "abc", string(l.Page))
}

func TestMemoryCache_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, _ := c.Get(ctx, "/p", "k")
			_ = c.Set(ctx, "/p", "k", l.Generation, []byte("v"))
			_ = c.Revalidate(ctx, "/p")
		}()
	}
	wg.Wait()

	l, _ := c.Get(ctx, "/p", "k")
	assert.False(t, l.Hit, "last operation on every goroutine was a revalidation")
	assert.Equal(t, int64(50), l.Generation)
}
