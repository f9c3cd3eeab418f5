package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrLineNotFound = errors.New("cart line not found")
)

type cartEntry struct {
	lines   []LineItem
	touched time.Time
}

// CartStore keeps shopper carts in memory, keyed by a server-issued cart id.
// It only holds prospective line items; availability gating and totals belong
// to the engines and are applied at the API layer. Every access refreshes the
// cart's touched time so idle carts can be swept.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cartEntry)}
}

// Create opens a new empty cart and returns its id.
func (s *CartStore) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = &cartEntry{lines: []LineItem{}, touched: time.Now()}
	s.mu.Unlock()
	return id
}

// Add appends a line to the cart. A line with the same item and the same date
// range as an existing one is merged by summing quantities instead.
func (s *CartStore) Add(cartID string, line LineItem) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.carts[cartID]
	if !ok {
		return LineItem{}, ErrCartNotFound
	}
	entry.touched = time.Now()
	for i, existing := range entry.lines {
		if existing.ItemID == line.ItemID && existing.Start == line.Start && existing.End == line.End {
			entry.lines[i].Qty += line.Qty
			return entry.lines[i], nil
		}
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	entry.lines = append(entry.lines, line)
	return line, nil
}

// LinePatch carries the mutable fields of a cart line. Nil/zero fields keep
// the current value.
type LinePatch struct {
	Qty   int
	Start Date
	End   Date
}

// Update applies a patch to one line and returns the result. Date or quantity
// edits must re-trigger availability evaluation in the caller.
func (s *CartStore) Update(cartID, lineID string, patch LinePatch) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.carts[cartID]
	if !ok {
		return LineItem{}, ErrCartNotFound
	}
	entry.touched = time.Now()
	for i := range entry.lines {
		if entry.lines[i].ID != lineID {
			continue
		}
		if patch.Qty > 0 {
			entry.lines[i].Qty = patch.Qty
		}
		if !patch.Start.IsZero() {
			entry.lines[i].Start = patch.Start
		}
		if !patch.End.IsZero() {
			entry.lines[i].End = patch.End
		}
		return entry.lines[i], nil
	}
	return LineItem{}, ErrLineNotFound
}

// Remove deletes one line from the cart.
func (s *CartStore) Remove(cartID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	entry.touched = time.Now()
	for i := range entry.lines {
		if entry.lines[i].ID == lineID {
			entry.lines = append(entry.lines[:i], entry.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Clear empties the cart but keeps it open.
func (s *CartStore) Clear(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	entry.lines = []LineItem{}
	entry.touched = time.Now()
	return nil
}

// Lines returns a snapshot copy of the cart contents.
func (s *CartStore) Lines(cartID string) ([]LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	out := make([]LineItem, len(entry.lines))
	copy(out, entry.lines)
	return out, nil
}

// Totals prices the cart through the pricing engine.
func (s *CartStore) Totals(cartID string, taxRate, depositFraction decimal.Decimal) (Totals, error) {
	lines, err := s.Lines(cartID)
	if err != nil {
		return Totals{}, err
	}
	return CartTotals(lines, taxRate, depositFraction), nil
}

// PruneStale drops every cart untouched for longer than maxAge and returns
// how many were removed.
func (s *CartStore) PruneStale(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, entry := range s.carts {
		if entry.touched.Before(cutoff) {
			delete(s.carts, id)
			pruned++
		}
	}
	return pruned
}
