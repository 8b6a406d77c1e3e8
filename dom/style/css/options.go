package css

// AdjustFunc is an additional style adjustment. It receives the builder of
// the style to adjust and the cascade flags of the resolution. An AdjustFunc
// may modify the style of the builder only and has to be idempotent.
type AdjustFunc func(b *StyleBuilder, flags CascadeFlags)

type props struct {
	visitedStyles bool
	platform      []AdjustFunc
	adjusters     []AdjustFunc
}

func defaultProps() props {
	return props{visitedStyles: true}
}

// Option is a type to help configuring a resolver at creation time.
type Option struct {
	config func(props) props
}

// VisitedStyles enables or disables the computation of visited styles.
// It is enabled by default. With visited styles disabled, links are styled
// as unvisited links, regardless of their state.
func VisitedStyles(enabled bool) Option {
	conf := func(p props) props {
		p.visitedStyles = enabled
		return p
	}
	return Option{config: conf}
}

// WithPlatformAdjustment registers an adjustment for native anonymous
// elements, i.e. boxes generated by the embedding platform. Platform
// adjustments run after all other adjustments.
func WithPlatformAdjustment(f AdjustFunc) Option {
	conf := func(p props) props {
		if f != nil {
			p.platform = append(p.platform[:len(p.platform):len(p.platform)], f)
		}
		return p
	}
	return Option{config: conf}
}

// WithAdjuster registers an additional adjustment, applied to every element
// and pseudo-element style (but not to text styles) after the built-in
// adjustments.
func WithAdjuster(f AdjustFunc) Option {
	conf := func(p props) props {
		if f != nil {
			p.adjusters = append(p.adjusters[:len(p.adjusters):len(p.adjusters)], f)
		}
		return p
	}
	return Option{config: conf}
}
