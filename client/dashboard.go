package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"restaurant-pos-api/models"
)

// DashboardPoller keeps a kitchen station's view of open orders fresh.
// One poll is outstanding at a time; a fetch error surfaces via LastError
// but neither stops the loop nor clears the displayed orders.
type DashboardPoller struct {
	c        *Client
	itemType string
	interval time.Duration

	mu         sync.Mutex
	orders     []models.Order
	lastErr    error
	generation uint64
	cancel     context.CancelFunc
}

func NewDashboardPoller(c *Client, itemType string, interval time.Duration) *DashboardPoller {
	return &DashboardPoller{c: c, itemType: itemType, interval: interval}
}

// Start begins polling immediately and then on every interval until Stop
// is called or ctx is done.
func (p *DashboardPoller) Start(ctx context.Context) {
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
				// The fetch runs synchronously in this goroutine, so a
				// new poll never starts while one is in flight.
				p.poll(ctx, gen)
			}
		}
	}()
}

// Stop ends the polling loop. Responses still in flight are discarded:
// the generation bump makes them stale.
func (p *DashboardPoller) Stop() {
	p.mu.Lock()
	p.generation++
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (p *DashboardPoller) poll(ctx context.Context, gen uint64) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	err := p.c.do(ctx, http.MethodGet, "/api/orders/dashboard/"+p.itemType, nil, &resp)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return // poller was stopped while the request was in flight
	}
	if err != nil {
		p.lastErr = err
		return // keep showing the previous orders
	}
	p.lastErr = nil

	// Defensive second filter: the server already returns open orders
	// only, but a completed one slipping through must never render.
	open := make([]models.Order, 0, len(resp.Orders))
	for _, order := range resp.Orders {
		if order.Status != models.StatusCompleted {
			open = append(open, order)
		}
	}
	p.orders = open
}

// Orders returns the open orders with their lines narrowed to this
// station's item type.
func (p *DashboardPoller) Orders() []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Order, len(p.orders))
	for i, order := range p.orders {
		view := order
		view.Items = order.LinesOfType(p.itemType)
		out[i] = view
	}
	return out
}

// Complete marks the order with the given timestamp completed and removes
// it from the local list immediately rather than waiting for the next
// poll. Polling continues regardless of the outcome.
func (p *DashboardPoller) Complete(ctx context.Context, timestamp string) error {
	body := map[string]string{"timestamp": timestamp}
	if err := p.c.do(ctx, http.MethodPut, "/api/orders/dashboard/complete", body, nil); err != nil {
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.orders[:0]
	for _, order := range p.orders {
		if order.Timestamp != timestamp {
			kept = append(kept, order)
		}
	}
	p.orders = kept
	return nil
}

// LastError reports the most recent fetch or completion failure, nil
// after a successful poll.
func (p *DashboardPoller) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
