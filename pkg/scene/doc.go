// Package scene decodes view trees from TOML documents and builds them
// into laid-out [view.Container] hierarchies.
//
// A scene names its root layout and lists its views:
//
//	name = "card"
//	layout = "manual"
//	fixed = [0, 0]
//
//	[[views]]
//	id = "title"
//	kind = "label"
//	text = "Hello"
//	frame = [0, 10, 0, 0]
//	options = ["fit", "center-horizontal"]
//
// The root and every container pick one of three layouts:
//
//   - vertical stacks subviews top to bottom at full width (the default)
//   - fill gives every subview the whole container
//   - manual resolves each subview's frame, reference and options through
//     [layout.Pass.SetFrameIn]
//
// Views without an id receive a UUID derived from the scene name and the
// view's position, so the same document always yields the same ids.
package scene
