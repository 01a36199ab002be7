package ddouble

import (
	"math/big"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// PowCache memoises non-negative integer powers of a fixed base.
//
// A PowCache is safe for concurrent use. Two goroutines asking for the same
// power for the first time may both compute it; both store the same value, so
// the race only costs the duplicated work.
//
// The *big.Int values handed out by Pow are shared with the cache and with
// every other caller. They must not be modified.
type PowCache struct {
	base  *big.Int
	items *cache.Cache
}

// NewPowCache creates an empty cache of powers of base.
func NewPowCache(base int64) *PowCache {
	return &PowCache{
		base:  big.NewInt(base),
		items: cache.New(cache.NoExpiration, 0),
	}
}

// Base returns the base the cache was created with.
func (pc *PowCache) Base() int64 { return pc.base.Int64() }

// Len returns the number of powers currently held.
func (pc *PowCache) Len() int { return pc.items.ItemCount() }

// Pow returns base^n. It panics if n is negative.
func (pc *PowCache) Pow(n int) *big.Int {
	if n < 0 {
		panic("ddouble: negative power")
	}
	key := strconv.Itoa(n)
	if v, ok := pc.items.Get(key); ok {
		return v.(*big.Int)
	}
	p := new(big.Int).Exp(pc.base, big.NewInt(int64(n)), nil)
	pc.items.Set(key, p, cache.NoExpiration)
	return p
}

// Flush discards every cached power.
func (pc *PowCache) Flush() { pc.items.Flush() }
