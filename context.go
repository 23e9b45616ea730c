package validators

// Context supplies diagnostic information used to enrich failure messages.
// It is optional everywhere it appears: a nil Context, or a Context reporting
// either capability as unavailable, degrades to neutral message fragments.
//
// Host frameworks implement Context over whatever component model they render;
// RenderContext is a ready-made implementation for hosts that already know the
// names involved.
type Context interface {
	// ComponentName resolves a human-readable name for the component whose
	// state is being validated.
	ComponentName() (string, bool)

	// ParentComponent resolves the name of the last-rendered parent of that
	// component, when the host's renderer can provide one.
	ParentComponent() (string, bool)
}

// RenderContext is the default Context implementation, carrying pre-resolved
// component names. Empty names report as unavailable.
type RenderContext struct {
	Component string
	Parent    string
}

func (c RenderContext) ComponentName() (string, bool) {
	return c.Component, c.Component != ""
}

func (c RenderContext) ParentComponent() (string, bool) {
	return c.Parent, c.Parent != ""
}
