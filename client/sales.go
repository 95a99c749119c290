package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"restaurant-pos-api/models"
)

// SalesPoller keeps the manager's sales overview fresh. Each successful
// fetch replaces the whole summary; a failed fetch surfaces an error but
// keeps the previously displayed numbers (stale-but-available, by
// contract of the sales view).
type SalesPoller struct {
	c        *Client
	interval time.Duration

	mu         sync.Mutex
	summary    models.SalesSummary
	lastErr    error
	generation uint64
	cancel     context.CancelFunc
}

func NewSalesPoller(c *Client, interval time.Duration) *SalesPoller {
	return &SalesPoller{c: c, interval: interval}
}

func (p *SalesPoller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	gen := p.generation
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.poll(ctx, gen)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.poll(ctx, gen)
			}
		}
	}()
}

func (p *SalesPoller) Stop() {
	p.mu.Lock()
	p.generation++
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (p *SalesPoller) poll(ctx context.Context, gen uint64) {
	var summary models.SalesSummary
	err := p.c.do(ctx, http.MethodGet, "/api/orders/summary", nil, &summary)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return
	}
	if err != nil {
		p.lastErr = err
		return
	}
	p.lastErr = nil
	p.summary = summary
}

// Summary returns the most recently fetched sales metrics.
func (p *SalesPoller) Summary() models.SalesSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

// LastError reports the most recent fetch failure, nil after a success.
func (p *SalesPoller) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
