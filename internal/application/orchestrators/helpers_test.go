package orchestrators

import (
	"fmt"
	"sync"
	"time"
)

var testTime = time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

func testNow() time.Time { return testTime }

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// countingObserver implements MutationObserver for testing.
type countingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{counts: map[string]int{}}
}

func (o *countingObserver) ObserveMutation(kind, op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts[kind+"/"+op]++
}

func (o *countingObserver) count(kind, op string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counts[kind+"/"+op]
}
