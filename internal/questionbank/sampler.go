package questionbank

import "math/rand/v2"

// Rand is the randomness the sampler needs. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Sample draws count templates from pool uniformly and without replacement.
//
// When count exceeds the pool size the pool is first repeated end to end
// ceil(count/len(pool)) times, so the result then contains the same template
// more than once. The result is in draw order. count <= 0 or an empty pool
// yields an empty slice. A nil rng uses the process-wide source.
func Sample(pool []Template, count int, rng Rand) []Template {
	if count <= 0 || len(pool) == 0 {
		return []Template{}
	}
	if rng == nil {
		rng = globalRand{}
	}

	effective := pool
	if count > len(pool) {
		copies := (count + len(pool) - 1) / len(pool)
		effective = make([]Template, 0, copies*len(pool))
		for range copies {
			effective = append(effective, pool...)
		}
	}

	n := min(count, len(effective))

	// Partial Fisher-Yates over slot indexes.
	slots := make([]int, len(effective))
	for i := range slots {
		slots[i] = i
	}

	out := make([]Template, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(slots)-i)
		slots[i], slots[j] = slots[j], slots[i]
		out[i] = effective[slots[i]]
	}
	return out
}
