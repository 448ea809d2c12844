package tinyvg

// RenderOption configures a Render call via the functional-options
// pattern.
//
// Example:
//
//	// Default scratch budgets (4096 points, 512 sub-paths)
//	err := tinyvg.Render(fb, header, colors, cmd)
//
//	// Raise the budgets for unusually complex artwork
//	err := tinyvg.Render(fb, header, colors, cmd,
//	    tinyvg.WithScratchLimits(16384, 2048))
type RenderOption func(*renderOptions)

// renderOptions holds the optional configuration for a Render call.
type renderOptions struct {
	maxPoints   int
	maxSubpaths int
}

// defaultRenderOptions returns the spec-mandated scratch budgets: 4096
// points and 512 sub-paths per flattened path.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		maxPoints:   4096,
		maxSubpaths: 512,
	}
}

// WithScratchLimits sets the capacities of the path flattener's
// fixed-capacity scratch buffers (defaults: 4096 points, 512 sub-paths);
// a non-positive argument leaves that default in place. Larger limits cost
// a larger fixed allocation for the duration of the Render call.
func WithScratchLimits(maxPoints, maxSubpaths int) RenderOption {
	return func(o *renderOptions) {
		if maxPoints > 0 {
			o.maxPoints = maxPoints
		}
		if maxSubpaths > 0 {
			o.maxSubpaths = maxSubpaths
		}
	}
}
