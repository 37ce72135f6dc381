// Package ui renders the dock terminal host using Lipgloss.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): project, panel state, lock mode    │
//	├───────────────────────────────┬─────────────────────┤
//	│                               │                     │
//	│   Editor windows              │   Agent panel       │
//	│   (frame.Window per column)   │   (side window)     │
//	│                               │                     │
//	├───────────────────────────────┴─────────────────────┤
//	│ Footer (1 line): key help or a flash message        │
//	└─────────────────────────────────────────────────────┘
//
// Windows are drawn left to right at exactly the column width the frame
// assigns them, so what the controller sizes is what the user sees.
//
// # Components
//
// Header: project name and panel visibility on a gradient background.
//
// Footer: short help from the key map, replaced by a flash message for a few
// seconds after a command reports something.
//
// RenderFrame: draws every window of a frame.Frame with its title, border and
// content. Buffers are syntax highlighted with chroma; agent panels show
// their transcript.
//
// The modals subpackage holds the provider chooser shown when a command
// needs the user to pick an agent.
package ui
