package printer

import (
	"fmt"
	"io"
	"log"
	"sync"

	"restaurant-pos-api/models"
)

// Printer renders a kitchen receipt for a submitted order.
type Printer interface {
	PrintOrder(tableNumber string, lines []models.OrderLine, comment string) error
	Available() bool
}

// ReceiptPrinter writes a plain-text receipt to an io.Writer, typically a
// spooler device or file. The layout mirrors the 42-column thermal
// receipt used at the counter.
type ReceiptPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewReceiptPrinter(out io.Writer) *ReceiptPrinter {
	return &ReceiptPrinter{out: out}
}

func (p *ReceiptPrinter) Available() bool { return p.out != nil }

func (p *ReceiptPrinter) PrintOrder(tableNumber string, lines []models.OrderLine, comment string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return fmt.Errorf("printer not connected")
	}

	if _, err := fmt.Fprintf(p.out, "Tisch Nr. %s\n\n", tableNumber); err != nil {
		return err
	}
	var total float64
	for _, line := range lines {
		lineTotal := line.Price * float64(line.Quantity)
		total += lineTotal
		fmt.Fprintf(p.out, "%-20s %7.2f€\n", line.Name, lineTotal)
		if line.Quantity > 1 {
			fmt.Fprintf(p.out, "%10dx %7.2f€\n", line.Quantity, line.Price)
		}
	}
	fmt.Fprintf(p.out, "Gesamt: %20.2f€\n", total)
	if comment != "" {
		fmt.Fprintf(p.out, "Kommentar:\n%s\n", comment)
	}
	_, err := fmt.Fprint(p.out, "\n----------------------------------------\n")
	return err
}

// MockPrinter logs receipts instead of printing them, for development
// setups without a physical printer.
type MockPrinter struct{}

func (MockPrinter) Available() bool { return true }

func (MockPrinter) PrintOrder(tableNumber string, lines []models.OrderLine, comment string) error {
	log.Printf("mock printer: table %s, %d lines, comment %q", tableNumber, len(lines), comment)
	return nil
}
