package stagefit

import (
	"fmt"
	"strings"
	"sync"
)

// PolicySource is anything SetResolutionPolicy can resolve into a policy:
// a *ResolutionPolicy or a Preset.
type PolicySource interface {
	resolvePolicy(reg *Strategies) (*ResolutionPolicy, error)
}

// Preset names a built-in policy. Presets expand into a ResolutionPolicy
// pairing EqualToFrame with the preset's content strategy.
type Preset uint8

const (
	PresetFixedHeight Preset = iota + 1 // EqualToFrame + FixedHeight
	PresetFixedWidth                    // EqualToFrame + FixedWidth
)

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case PresetFixedHeight:
		return "FIXED_HEIGHT"
	case PresetFixedWidth:
		return "FIXED_WIDTH"
	default:
		return fmt.Sprintf("Preset(%d)", uint8(p))
	}
}

// ParsePreset parses a preset name. Matching is case-insensitive and accepts
// FIXED_HEIGHT, fixed-height and fixedheight spellings.
func ParsePreset(name string) (Preset, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
	switch norm {
	case "fixedheight":
		return PresetFixedHeight, nil
	case "fixedwidth":
		return PresetFixedWidth, nil
	default:
		return 0, fmt.Errorf("parse preset %q: %w", name, ErrNoPolicy)
	}
}

func (p Preset) resolvePolicy(reg *Strategies) (*ResolutionPolicy, error) {
	if reg == nil || reg.EqualToFrame == nil {
		return nil, fmt.Errorf("preset %s: strategies not initialized: %w", p, ErrNoPolicy)
	}
	var content ContentStrategy
	switch p {
	case PresetFixedHeight:
		content = reg.FixedHeight
	case PresetFixedWidth:
		content = reg.FixedWidth
	default:
		return nil, fmt.Errorf("preset %s: %w", p, ErrNoPolicy)
	}
	if content == nil {
		return nil, fmt.Errorf("preset %s: strategies not initialized: %w", p, ErrNoPolicy)
	}
	return NewResolutionPolicy(reg.EqualToFrame, content), nil
}

// ResolutionPolicy pairs one container strategy with one content strategy
// and sequences their application.
type ResolutionPolicy struct {
	container ContainerStrategy
	content   ContentStrategy
}

// NewResolutionPolicy creates a policy from a container and a content
// strategy. Unrecognized strategies are ignored, leaving that half of the
// policy empty; an incomplete policy cannot be activated.
func NewResolutionPolicy(container ContainerStrategy, content ContentStrategy) *ResolutionPolicy {
	p := &ResolutionPolicy{}
	_ = p.SetContainerStrategy(container)
	_ = p.SetContentStrategy(content)
	return p
}

// SetContainerStrategy replaces the container strategy. A nil or
// unrecognized strategy is reported with ErrUnknownStrategy and the current
// strategy is kept.
func (p *ResolutionPolicy) SetContainerStrategy(s ContainerStrategy) error {
	if !knownContainer(s) {
		return fmt.Errorf("set container strategy %T: %w", s, ErrUnknownStrategy)
	}
	p.container = s
	return nil
}

// SetContentStrategy replaces the content strategy. A nil or unrecognized
// strategy is reported with ErrUnknownStrategy and the current strategy is
// kept.
func (p *ResolutionPolicy) SetContentStrategy(s ContentStrategy) error {
	if !knownContent(s) {
		return fmt.Errorf("set content strategy %T: %w", s, ErrUnknownStrategy)
	}
	p.content = s
	return nil
}

// ContainerStrategy returns the container strategy, or nil if unset.
func (p *ResolutionPolicy) ContainerStrategy() ContainerStrategy { return p.container }

// ContentStrategy returns the content strategy, or nil if unset.
func (p *ResolutionPolicy) ContentStrategy() ContentStrategy { return p.content }

// Complete reports whether both strategies are set.
func (p *ResolutionPolicy) Complete() bool {
	return p != nil && p.container != nil && p.content != nil
}

// Init forwards to both strategies. Call it whenever the policy becomes
// active, before any Apply.
func (p *ResolutionPolicy) Init(env Env) {
	if p.container != nil {
		p.container.Init(env)
	}
	if p.content != nil {
		p.content.Init(env)
	}
}

// Apply lays out the container and then computes the content layout for
// design. The container runs first so content measures a stable viewport.
func (p *ResolutionPolicy) Apply(env Env, design Size) (Layout, error) {
	if !p.Complete() {
		return Layout{}, fmt.Errorf("apply policy: %w", ErrNoPolicy)
	}
	p.container.Apply(env, design)
	return p.content.Apply(env, design)
}

// String describes the policy as container+content.
func (p *ResolutionPolicy) String() string {
	if p == nil {
		return "<nil>"
	}
	c, n := "none", "none"
	if p.container != nil {
		c = p.container.Kind().String()
	}
	if p.content != nil {
		n = p.content.Kind().String()
	}
	return c + "+" + n
}

func (p *ResolutionPolicy) resolvePolicy(*Strategies) (*ResolutionPolicy, error) {
	if !p.Complete() {
		return nil, fmt.Errorf("policy %v: %w", p, ErrNoPolicy)
	}
	return p, nil
}

// Strategies is the registry of shared strategy instances that presets
// expand into.
type Strategies struct {
	EqualToFrame ContainerStrategy
	FixedHeight  ContentStrategy
	FixedWidth   ContentStrategy
}

// NewStrategies returns a fully initialized registry.
func NewStrategies() *Strategies {
	return &Strategies{
		EqualToFrame: EqualToFrame{},
		FixedHeight:  FixedHeight{},
		FixedWidth:   FixedWidth{},
	}
}

var (
	strategiesMu      sync.Mutex
	defaultStrategies *Strategies
)

// DefaultStrategies returns the shared registry, creating it on first use.
func DefaultStrategies() *Strategies {
	strategiesMu.Lock()
	defer strategiesMu.Unlock()
	if defaultStrategies == nil {
		defaultStrategies = NewStrategies()
	}
	return defaultStrategies
}

// ShutdownStrategies discards the shared registry. The next call to
// DefaultStrategies creates a fresh one.
func ShutdownStrategies() {
	strategiesMu.Lock()
	defaultStrategies = nil
	strategiesMu.Unlock()
}
