package vgnav

import (
	"html"
	"io"
	"net/url"
	"strings"
)

// ClickEvent is the part of a DOM mouse event Link needs.
type ClickEvent interface {
	Button() int // 0 is the primary button
	CtrlKey() bool
	MetaKey() bool
	ShiftKey() bool
	AltKey() bool
	PreventDefault()
	DefaultPrevented() bool
}

// Link is an anchor that navigates through a Navigator on a plain left click
// and otherwise leaves the click to the browser.
type Link struct {
	Href   string
	Target string

	// OnClick runs before anything else.  Calling PreventDefault on the
	// event vetoes the navigation.
	OnClick func(ev ClickEvent)

	Navigator Navigator
}

// HandleClick processes a click on the anchor.  It returns true if the
// click was turned into a call to Navigate.
func (l *Link) HandleClick(ev ClickEvent) bool {

	if l.OnClick != nil {
		l.OnClick(ev)
	}

	if ev.DefaultPrevented() {
		return false
	}

	if ev.Button() != 0 || ev.CtrlKey() || ev.MetaKey() || ev.ShiftKey() || ev.AltKey() {
		return false
	}

	if strings.EqualFold(l.Target, "_blank") {
		return false
	}

	if isExternalHref(l.Href) || l.Navigator == nil {
		return false
	}

	ev.PreventDefault()
	l.Navigator.Navigate(l.Href)
	return true
}

// WriteHTML writes the anchor element with label as its text.
func (l *Link) WriteHTML(w io.Writer, label string) error {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(html.EscapeString(l.Href))
	sb.WriteString(`"`)
	if l.Target != "" {
		sb.WriteString(` target="`)
		sb.WriteString(html.EscapeString(l.Target))
		sb.WriteString(`"`)
		if strings.EqualFold(l.Target, "_blank") {
			sb.WriteString(` rel="noopener"`)
		}
	}
	sb.WriteString(`>`)
	sb.WriteString(html.EscapeString(label))
	sb.WriteString(`</a>`)
	_, err := io.WriteString(w, sb.String())
	return err
}

// isExternalHref is true for anything the router should not handle,
// i.e. hrefs with a scheme ("https:", "mailto:") or a host ("//cdn.example.com").
func isExternalHref(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return true
	}
	return u.Scheme != "" || u.Host != ""
}
