package mdw

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	unknownKind func(NodeKind)
}

// WithUnknownKindFunc registers a callback invoked once per node whose kind
// has no formatting rule. Such nodes fall through to default child
// traversal; the callback exists so callers can surface them.
func WithUnknownKindFunc(fn func(kind NodeKind)) RenderOption {
	return func(cfg *renderConfig) {
		cfg.unknownKind = fn
	}
}
