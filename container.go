package stagefit

// ContainerKind identifies a built-in container strategy.
type ContainerKind uint8

const (
	ContainerEqualToFrame ContainerKind = iota + 1 // container fills the frame with a zeroed box model
)

// String returns the kind's preset-style name.
func (k ContainerKind) String() string {
	switch k {
	case ContainerEqualToFrame:
		return "EQUAL_TO_FRAME"
	default:
		return "UNKNOWN"
	}
}

// ContainerStrategy decides how the container is laid out against the frame
// before content is scaled. The set of strategies is closed; implementations
// live in this package.
type ContainerStrategy interface {
	Kind() ContainerKind
	// Init captures one-time setup state when a policy becomes active.
	Init(env Env)
	// Apply lays out the container for the given design size. It never
	// touches scale factors.
	Apply(env Env, design Size)

	containerStrategy()
}

// EqualToFrame makes the container occupy the available frame. Apply
// normalizes the container's box model so that viewport measurements are
// unambiguous: unset or negative padding, border and margin become zero.
type EqualToFrame struct{}

// Kind implements ContainerStrategy.
func (EqualToFrame) Kind() ContainerKind { return ContainerEqualToFrame }

// Init implements ContainerStrategy. It is a no-op.
func (EqualToFrame) Init(Env) {}

// Apply implements ContainerStrategy.
func (EqualToFrame) Apply(env Env, _ Size) {
	if env.Container == nil {
		return
	}
	env.Container.SetBoxModel(env.Container.BoxModel().Normalized())
}

func (EqualToFrame) containerStrategy() {}

// knownContainer reports whether s is a usable built-in container strategy.
func knownContainer(s ContainerStrategy) bool {
	switch v := s.(type) {
	case EqualToFrame:
		return true
	case *EqualToFrame:
		return v != nil
	default:
		return false
	}
}
