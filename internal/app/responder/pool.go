package responder

import (
	"sync"
	"sync/atomic"

	"github.com/TPizik/gsad/internal/app/models"
)

// Pool recycles response data between requests. Values handed out by
// Acquire are always in the default state.
type Pool struct {
	pool sync.Pool

	mu       sync.Mutex
	acquired map[*models.CmdResponseData]struct{}

	redirectsReleased atomic.Int64
}

func NewPool() *Pool {
	p := &Pool{
		acquired: make(map[*models.CmdResponseData]struct{}),
	}
	p.pool.New = func() any {
		return models.NewCmdResponseData()
	}
	return p
}

func (p *Pool) Acquire() *models.CmdResponseData {
	data := p.pool.Get().(*models.CmdResponseData)
	p.mu.Lock()
	p.acquired[data] = struct{}{}
	p.mu.Unlock()
	return data
}

// Release resets data and puts it back. data must not be used afterwards.
// Values not currently handed out by Acquire, including ones already
// released, are ignored.
func (p *Pool) Release(data *models.CmdResponseData) {
	if data == nil {
		return
	}
	p.mu.Lock()
	_, ok := p.acquired[data]
	delete(p.acquired, data)
	p.mu.Unlock()
	if !ok {
		return
	}

	if data.ClearRedirect() {
		p.redirectsReleased.Add(1)
	}
	data.Reset()
	p.pool.Put(data)
}

// RedirectsReleased reports how many redirects Release has dropped.
func (p *Pool) RedirectsReleased() int64 {
	return p.redirectsReleased.Load()
}
