package session

import (
	"sync"
	"testing"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testAccount() *domain.Account {
	expiry := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:              7,
		Email:                  "ada@example.com",
		FullName:               "Ada Lovelace",
		Balance:                decimal.NewFromInt(150),
		Documents:              []string{"data:image/png;base64,aGk="},
		RefreshTokenExpiryTime: &expiry,
	}
}

func TestContext_StartsAnonymous(t *testing.T) {
	c := NewContext()

	current, ok := c.Current()
	assert.False(t, ok)
	assert.Nil(t, current)
	assert.False(t, c.IsAuthenticated())
}

func TestContext_SetAndCurrent(t *testing.T) {
	c := NewContext()
	c.Set(testAccount())

	current, ok := c.Current()
	assert.True(t, ok)
	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, int64(7), current.AccountID)
	assert.Equal(t, "ada@example.com", current.Email)
}

func TestContext_ClearIsIdempotent(t *testing.T) {
	c := NewContext()
	c.Set(testAccount())

	c.Clear()
	assert.False(t, c.IsAuthenticated())

	// Clearing an anonymous context is a no-op.
	c.Clear()
	assert.False(t, c.IsAuthenticated())
}

func TestContext_SetReplacesSnapshot(t *testing.T) {
	c := NewContext()
	c.Set(testAccount())

	other := testAccount()
	other.AccountID = 8
	other.Email = "grace@example.com"
	c.Set(other)

	current, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, int64(8), current.AccountID)
	assert.Equal(t, "grace@example.com", current.Email)
}

func TestContext_SnapshotsDoNotAlias(t *testing.T) {
	c := NewContext()
	original := testAccount()
	c.Set(original)

	// Mutating the caller's copy must not leak into the stored snapshot.
	original.Documents[0] = "tampered"
	original.Email = "tampered@example.com"

	current, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", current.Email)
	assert.Equal(t, "data:image/png;base64,aGk=", current.Documents[0])

	// Mutating a returned snapshot must not leak back either.
	current.Documents[0] = "also tampered"
	again, _ := c.Current()
	assert.Equal(t, "data:image/png;base64,aGk=", again.Documents[0])
}

func TestContext_ConcurrentAccess(t *testing.T) {
	c := NewContext()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(testAccount())
		}()
		go func() {
			defer wg.Done()
			c.Current()
			c.IsAuthenticated()
		}()
	}
	wg.Wait()

	_, ok := c.Current()
	assert.True(t, ok)
}
