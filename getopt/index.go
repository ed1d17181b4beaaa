package getopt

import (
	"sort"

	"github.com/dzonerzy/go-getopt/internal/pool"
)

// indexScratch is the per-parse working storage for the lookup index: two
// slices of positions into the option table, one per key space. Instances
// are pooled and reused across Parse calls so the hot path stays
// allocation-free.
type indexScratch struct {
	short shortKeys
	long  longKeys
}

// scratchPool recycles index scratch between Parse calls. The initial
// capacity covers typical option tables without growing.
var scratchPool = pool.NewPool(func() *indexScratch {
	return &indexScratch{
		short: shortKeys{idx: make([]int, 0, 16)},
		long:  longKeys{idx: make([]int, 0, 16)},
	}
})

// shortKeys sorts table positions by short option character.
type shortKeys struct {
	idx  []int
	opts []Option
}

func (s *shortKeys) Len() int      { return len(s.idx) }
func (s *shortKeys) Swap(i, j int) { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }
func (s *shortKeys) Less(i, j int) bool {
	return s.opts[s.idx[i]].Short < s.opts[s.idx[j]].Short
}

// longKeys sorts table positions by long option name, in byte order.
type longKeys struct {
	idx  []int
	opts []Option
}

func (l *longKeys) Len() int      { return len(l.idx) }
func (l *longKeys) Swap(i, j int) { l.idx[i], l.idx[j] = l.idx[j], l.idx[i] }
func (l *longKeys) Less(i, j int) bool {
	return l.opts[l.idx[i]].Long < l.opts[l.idx[j]].Long
}

// lookup is the per-parse index over an option table. It holds only
// positions into the caller's table, never copies of the specs.
type lookup struct {
	opts []Option
	s    *indexScratch
}

// buildLookup projects the table into the two sorted key sequences and
// rejects duplicate keys. The returned lookup owns pooled scratch and must
// be released exactly once.
func buildLookup(opts []Option) (lookup, error) {
	s := scratchPool.Get()
	s.short.opts, s.long.opts = opts, opts

	for i := range opts {
		if opts[i].Short != 0 {
			s.short.idx = append(s.short.idx, i)
		}
		if opts[i].Long != "" {
			s.long.idx = append(s.long.idx, i)
		}
	}
	sort.Sort(&s.short)
	sort.Sort(&s.long)

	lx := lookup{opts: opts, s: s}
	if err := lx.checkDuplicates(); err != nil {
		lx.release()
		return lookup{}, err
	}
	return lx, nil
}

// checkDuplicates scans the sorted sequences for adjacent equal keys. A
// duplicate key would make the binary-search result depend on table order,
// so it is rejected as a caller error instead.
func (lx *lookup) checkDuplicates() error {
	sh := lx.s.short.idx
	for k := 1; k < len(sh); k++ {
		if c := lx.opts[sh[k]].Short; c == lx.opts[sh[k-1]].Short {
			return &TableError{Short: c}
		}
	}
	lg := lx.s.long.idx
	for k := 1; k < len(lg); k++ {
		if name := lx.opts[lg[k]].Long; name == lx.opts[lg[k-1]].Long {
			return &TableError{Long: name}
		}
	}
	return nil
}

// findShort binary-searches the short key sequence for c. Hand-rolled
// rather than sort.Search to keep the lookup closure-free.
func (lx *lookup) findShort(c byte) *Option {
	idx := lx.s.short.idx
	lo, hi := 0, len(idx)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if lx.opts[idx[mid]].Short < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(idx) && lx.opts[idx[lo]].Short == c {
		return &lx.opts[idx[lo]]
	}
	return nil
}

// findLong binary-searches the long key sequence for an exact name match.
// No prefix or fuzzy matching happens here.
func (lx *lookup) findLong(name string) *Option {
	idx := lx.s.long.idx
	lo, hi := 0, len(idx)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if lx.opts[idx[mid]].Long < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(idx) && lx.opts[idx[lo]].Long == name {
		return &lx.opts[idx[lo]]
	}
	return nil
}

// release returns the scratch to the pool, dropping any references to the
// caller's table. Safe to call once per lookup.
func (lx *lookup) release() {
	s := lx.s
	if s == nil {
		return
	}
	lx.s = nil
	s.short.idx = s.short.idx[:0]
	s.short.opts = nil
	s.long.idx = s.long.idx[:0]
	s.long.opts = nil
	scratchPool.Put(s)
}
