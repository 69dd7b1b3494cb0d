// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Process-wide pseudo-random generator used only for staging-directory
// suffixes: a singleton lazily seeded at first use from the wall clock's
// nanosecond reading (time.Now().UnixNano(); the monotonic clock reading
// is not used), guarded by a mutex rather than left to whatever
// default-global-state threading guarantees the host happens to provide.

package preprocessor

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	suffixOnce sync.Once
	suffixRand *rand.Rand
	suffixMu   sync.Mutex
)

func randomSuffix() string {
	suffixOnce.Do(func() {
		suffixRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	})

	suffixMu.Lock()
	value := suffixRand.Uint64()
	suffixMu.Unlock()

	return fmt.Sprintf("%x", value)
}
