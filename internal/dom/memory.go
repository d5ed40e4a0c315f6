// Package dom provides Page implementations for the greet handler.
package dom

import (
	"fmt"
	"sync"

	apierrors "github.com/diogo/auctiondapp/internal/errors"
)

// MemoryPage is an in-memory page. It is safe for concurrent use.
type MemoryPage struct {
	mu        sync.RWMutex
	values    map[string]string
	texts     map[string]string
	listeners map[string][]func()
	elements  map[string]bool
}

// NewMemoryPage creates a page containing the given element ids.
func NewMemoryPage(ids ...string) *MemoryPage {
	p := &MemoryPage{
		values:    make(map[string]string),
		texts:     make(map[string]string),
		listeners: make(map[string][]func()),
		elements:  make(map[string]bool),
	}
	for _, id := range ids {
		p.elements[id] = true
	}
	return p
}

func (p *MemoryPage) lookup(id string) error {
	if !p.elements[id] {
		return fmt.Errorf("%w: #%s", apierrors.ErrNotFound, id)
	}
	return nil
}

// Value returns the current value of an input element
func (p *MemoryPage) Value(id string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.lookup(id); err != nil {
		return "", err
	}
	return p.values[id], nil
}

// SetValue sets the value of an input element, as typing would
func (p *MemoryPage) SetValue(id, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.lookup(id); err != nil {
		return err
	}
	p.values[id] = value
	return nil
}

// Text returns the text content of an element
func (p *MemoryPage) Text(id string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.texts[id]
}

// SetText replaces the text content of an element
func (p *MemoryPage) SetText(id, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.lookup(id); err != nil {
		return err
	}
	p.texts[id] = text
	return nil
}

// OnClick registers a click listener on an element
func (p *MemoryPage) OnClick(id string, fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.lookup(id); err != nil {
		return err
	}
	p.listeners[id] = append(p.listeners[id], fn)
	return nil
}

// Click dispatches a click on an element to its listeners
func (p *MemoryPage) Click(id string) error {
	p.mu.RLock()
	if err := p.lookup(id); err != nil {
		p.mu.RUnlock()
		return err
	}
	listeners := append([]func(){}, p.listeners[id]...)
	p.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}
