// Package ui provides the SMS Shield terminal interface, built on Bubble Tea.
//
// # Views
//
// Two views share a navigation bar:
//
//   - Spam Classifier: a message input, a submit button and a result card
//   - About: static product copy in a scrollable viewport
//
// Below LayoutCompactWidth columns the tabs collapse into a menu toggle;
// the open menu lists both views vertically and closes when one is picked.
//
// # State
//
// The model does not keep its own copy of the request lifecycle. Every frame
// reads one state.Snapshot from the controller, so the button, the spinner
// and the result card always agree. Submitting calls Controller.Begin on the
// event loop and runs Controller.Complete inside a tea.Cmd; the resolvedMsg
// that follows only triggers a redraw.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key routing and Run
//   - classifier.go: input box, submit flow and classifier rendering
//   - about.go: About copy and viewport
//   - header.go: navigation bar and compact menu
//   - result.go: verdict card copy and styling
//   - modal.go: blocking notice dialog
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Key Bindings
//
//   - enter / ctrl+s: check the message (alt+enter or ctrl+j for a new line)
//   - tab / shift+tab: next / previous view
//   - 1 / 2: jump to a view (outside the input box, or inside the menu)
//   - ctrl+o or m: toggle the compact menu
//   - esc: leave the input box, or close the menu
//   - i: return to the input box
//   - ctrl+t or T: cycle theme
//   - f1 or ?: help
//   - q or ctrl+c: quit (q only outside the input box)
package ui
