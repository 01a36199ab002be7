package ddouble

import (
	"math/big"
	"sync"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestPowCache(t *testing.T) {
	tt := assert.WrapTB(t)

	pc := NewPowCache(5)
	tt.MustEqual(int64(5), pc.Base())
	tt.MustEqual(0, pc.Len())

	tt.MustEqual("1", pc.Pow(0).String())
	tt.MustEqual("5", pc.Pow(1).String())
	tt.MustEqual("95367431640625", pc.Pow(20).String())
	tt.MustEqual(3, pc.Len())

	// Repeated lookups hand back the stored value.
	tt.MustAssert(pc.Pow(20) == pc.Pow(20))
	tt.MustEqual(3, pc.Len())

	pc.Flush()
	tt.MustEqual(0, pc.Len())
	tt.MustEqual("95367431640625", pc.Pow(20).String())
}

func TestPowCacheIndependent(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := NewPowCache(10), NewPowCache(10)
	a.Pow(7)
	tt.MustEqual(1, a.Len())
	tt.MustEqual(0, b.Len())
	tt.MustAssert(a.Pow(7) != b.Pow(7))
	tt.MustEqual(0, a.Pow(7).Cmp(b.Pow(7)))
}

func TestPowCacheConcurrent(t *testing.T) {
	tt := assert.WrapTB(t)

	pc := NewPowCache(10)
	var wg sync.WaitGroup
	results := make([][]*big.Int, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				results[g] = append(results[g], pc.Pow(n))
			}
		}(g)
	}
	wg.Wait()

	tt.MustEqual(200, pc.Len())
	for n := 0; n < 200; n++ {
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
		for g := range results {
			tt.MustEqual(0, want.Cmp(results[g][n]), "goroutine %d power %d", g, n)
		}
	}
}

func TestPowCacheNegative(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	NewPowCache(2).Pow(-1)
}
