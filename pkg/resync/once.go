package resync

import (
	"sync"
	"sync/atomic"
)

// Once is similar to sync.Once but adds a Reset method
// so that lazy-loaded singletons can be reinitialized from unit tests.
type Once struct {
	m    sync.Mutex
	done uint32
}

func (o *Once) Do(f func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}
	o.m.Lock()
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		f()
	}
}

// Reset forgets the previous invocation. The next call to Do will run again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	atomic.StoreUint32(&o.done, 0)
}
