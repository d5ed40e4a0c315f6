//go:build js && wasm

package dom

import (
	"fmt"
	"sync"
	"syscall/js"

	apierrors "github.com/diogo/auctiondapp/internal/errors"
)

// BrowserPage is the live document of the hosting page.
type BrowserPage struct {
	document js.Value

	mu    sync.Mutex
	funcs []js.Func
}

// NewBrowserPage returns a page backed by the global document.
func NewBrowserPage() *BrowserPage {
	return &BrowserPage{document: js.Global().Get("document")}
}

func (p *BrowserPage) element(id string) (js.Value, error) {
	el := p.document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("%w: #%s", apierrors.ErrNotFound, id)
	}
	return el, nil
}

// Value returns the element's value property as a string
func (p *BrowserPage) Value(id string) (string, error) {
	el, err := p.element(id)
	if err != nil {
		return "", err
	}
	v := el.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return "", nil
	}
	return v.Call("toString").String(), nil
}

// SetText sets the element's innerText
func (p *BrowserPage) SetText(id, text string) error {
	el, err := p.element(id)
	if err != nil {
		return err
	}
	el.Set("innerText", text)
	return nil
}

// OnClick adds a click listener. fn runs on the JS event loop and must not
// block.
func (p *BrowserPage) OnClick(id string, fn func()) error {
	el, err := p.element(id)
	if err != nil {
		return err
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	p.mu.Lock()
	p.funcs = append(p.funcs, cb)
	p.mu.Unlock()

	el.Call("addEventListener", "click", cb)
	return nil
}

// Release frees the listeners created by OnClick
func (p *BrowserPage) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, f := range p.funcs {
		f.Release()
	}
	p.funcs = nil
}
