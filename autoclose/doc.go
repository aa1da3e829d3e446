// Package autoclose decides when an open overlay (tooltip, popover, dropdown)
// must close in response to pointer, touch and keyboard events.
//
// A coordinator is started per open overlay with Start. It listens on a
// shared EventSource, evaluates every press against the overlay's Config,
// confirms the decision on the matching release and closes immediately on
// Escape:
//
//	d := autoclose.NewDispatcher()
//	sub := autoclose.Start(d, autoclose.Config{
//		Mode:   autoclose.ModeOutsideOnly,
//		Inside: []autoclose.Element{menu},
//		Ignore: []autoclose.Element{toggle},
//	}, closeMenu, menuClosed)
//	defer sub.Cancel()
//
// The press decision is taken when the press happens, because handling the
// press may remove its target from the tree before the release arrives.
package autoclose
