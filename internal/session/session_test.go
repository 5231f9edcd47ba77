package session

import (
	"testing"

	"licensing-subscription-panel/internal/page"

	"github.com/stretchr/testify/assert"
)

func TestStoreCreate(t *testing.T) {
	store := NewStore()

	sess := store.Create()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, page.PageMain, sess.Router.Current())

	// 新会话携带默认许可状态
	assert.Equal(t, "Enterprise", sess.State.LicenseType)
	assert.Equal(t, 10000, sess.State.MonthlyCredits)
	assert.Equal(t, 8500, sess.State.UsedCredits)
	assert.True(t, sess.State.AutoRenewal)
	assert.Len(t, sess.State.FeaturesEnabled, 10)

	got, ok := store.Get(sess.ID)
	assert.True(t, ok)
	assert.Same(t, sess, got)
}

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore()

	first, created := store.GetOrCreate("")
	assert.True(t, created)

	again, created := store.GetOrCreate(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	// 未知 ID 重建会话，状态回到默认值
	other, created := store.GetOrCreate("missing-id")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, store.Count())
}

// 会话之间的状态互不影响
func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore()

	a := store.Create()
	b := store.Create()

	a.State.AutoRenewal = false
	assert.NoError(t, a.Router.Navigate(page.PageBilling))

	assert.True(t, b.State.AutoRenewal)
	assert.Equal(t, page.PageMain, b.Router.Current())
}
