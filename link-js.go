package vgnav

import "github.com/vugu/vugu/js"

// JSClickEvent adapts a browser MouseEvent object to ClickEvent.
type JSClickEvent struct {
	Event js.Value
}

// Button implements ClickEvent.
func (e JSClickEvent) Button() int { return e.Event.Get("button").Int() }

// CtrlKey implements ClickEvent.
func (e JSClickEvent) CtrlKey() bool { return e.Event.Get("ctrlKey").Bool() }

// MetaKey implements ClickEvent.
func (e JSClickEvent) MetaKey() bool { return e.Event.Get("metaKey").Bool() }

// ShiftKey implements ClickEvent.
func (e JSClickEvent) ShiftKey() bool { return e.Event.Get("shiftKey").Bool() }

// AltKey implements ClickEvent.
func (e JSClickEvent) AltKey() bool { return e.Event.Get("altKey").Bool() }

// PreventDefault implements ClickEvent.
func (e JSClickEvent) PreventDefault() { e.Event.Call("preventDefault") }

// DefaultPrevented implements ClickEvent.
func (e JSClickEvent) DefaultPrevented() bool { return e.Event.Get("defaultPrevented").Bool() }

// JSEventer is implemented by Vugu's DOMEvent.
type JSEventer interface {
	JSEvent() js.Value
}

// DOMClickEvent returns a ClickEvent for a Vugu DOM event, so a component can do:
//
//	<a :href="c.Link.Href" @click="c.Link.HandleClick(vgnav.DOMClickEvent(event))">
func DOMClickEvent(ev JSEventer) ClickEvent {
	return JSClickEvent{Event: ev.JSEvent()}
}
