package printer

import (
	"log"
	"time"

	"restaurant-pos-api/models"
)

// job is one queued receipt.
type job struct {
	tableNumber string
	lines       []models.OrderLine
	comment     string
	attempts    int
}

// Spool decouples order placement from receipt printing: handlers enqueue
// and return immediately, a single worker goroutine drains the queue.
// A failed print is retried with a delay; an order is never rejected
// because the printer is down.
type Spool struct {
	printer Printer
	jobs    chan job
	done    chan struct{}

	// RetryDelay between attempts for a failing job.
	RetryDelay time.Duration
	// MaxAttempts before a job is dropped to keep the queue moving.
	MaxAttempts int
}

func NewSpool(p Printer, queueSize int) *Spool {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Spool{
		printer:     p,
		jobs:        make(chan job, queueSize),
		done:        make(chan struct{}),
		RetryDelay:  2 * time.Second,
		MaxAttempts: 5,
	}
}

// Start launches the worker goroutine.
func (s *Spool) Start() {
	go s.run()
}

// Stop drains nothing further; queued jobs that have not started are lost.
func (s *Spool) Stop() {
	close(s.done)
}

// Enqueue adds a receipt to the print queue. Returns false when the queue
// is full; the caller only logs this, order placement is not affected.
func (s *Spool) Enqueue(tableNumber string, lines []models.OrderLine, comment string) bool {
	select {
	case s.jobs <- job{tableNumber: tableNumber, lines: lines, comment: comment}:
		return true
	default:
		log.Printf("print queue full, dropping receipt for table %s", tableNumber)
		return false
	}
}

// Pending returns the number of queued receipts.
func (s *Spool) Pending() int {
	return len(s.jobs)
}

func (s *Spool) run() {
	for {
		select {
		case <-s.done:
			return
		case j := <-s.jobs:
			s.process(j)
		}
	}
}

func (s *Spool) process(j job) {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		if !s.printer.Available() {
			log.Println("printer not available, waiting before retry")
			time.Sleep(s.RetryDelay)
			continue
		}

		err := s.printer.PrintOrder(j.tableNumber, j.lines, j.comment)
		if err == nil {
			log.Printf("receipt for table %s printed", j.tableNumber)
			return
		}

		j.attempts++
		if j.attempts >= s.MaxAttempts {
			log.Printf("dropping receipt for table %s after %d attempts: %v", j.tableNumber, j.attempts, err)
			return
		}
		log.Printf("failed to print receipt for table %s, retrying: %v", j.tableNumber, err)
		time.Sleep(s.RetryDelay)
	}
}
