package nn

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/born-ml/maskconv/internal/tensor"
)

// BuilderConfig holds defaults shared by every layer a Builder creates.
type BuilderConfig struct {
	// WeightNorm is used when a layer's Conv1DConfig.WeightNorm is nil.
	WeightNorm bool
}

// Builder creates masked convolution layers under named scopes of one
// ParameterStore.
//
// Example:
//
//	b := nn.NewBuilder(cpu.New(), nn.BuilderConfig{})
//	b.EnableWeightNormDefault()
//	out, err := b.MaskedConv1D("conv0", nn.Conv1DConfig{
//	    InputDim: 4, OutputDim: 8, FilterSize: 3,
//	    Mask: nn.MaskSpec{Kind: nn.MaskA},
//	}, input)
//	// Parameters: conv0/Filters, conv0/g, conv0/Biases
type Builder[B tensor.Backend] struct {
	store      *ParameterStore[B]
	backend    B
	weightNorm atomic.Bool
}

// NewBuilder creates a Builder with an empty parameter store.
func NewBuilder[B tensor.Backend](backend B, cfg BuilderConfig) *Builder[B] {
	b := &Builder[B]{
		store:   NewParameterStore[B](),
		backend: backend,
	}
	b.weightNorm.Store(cfg.WeightNorm)
	return b
}

// EnableWeightNormDefault turns weight normalization on for every later layer
// that does not set Conv1DConfig.WeightNorm. It cannot be turned off again.
func (b *Builder[B]) EnableWeightNormDefault() {
	b.weightNorm.Store(true)
}

// WeightNormDefault reports the current weight-norm default.
func (b *Builder[B]) WeightNormDefault() bool {
	return b.weightNorm.Load()
}

// Store returns the parameter store shared by all layers of this builder.
func (b *Builder[B]) Store() *ParameterStore[B] {
	return b.store
}

// Backend returns the backend used for allocation.
func (b *Builder[B]) Backend() B {
	return b.backend
}

// NewMaskedConv1D creates a layer whose parameters live under name.
// Each name can be used once per builder and must not contain "/".
func (b *Builder[B]) NewMaskedConv1D(name string, cfg Conv1DConfig) (*MaskedConv1D[B], error) {
	if name == "" || strings.Contains(name, scopeSeparator) {
		return nil, configErr("name", name, "layer names must be non-empty and must not contain "+scopeSeparator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layer %q: %w", name, err)
	}

	scope := b.store.Scope(name)
	if scope.Len() > 0 {
		return nil, fmt.Errorf("%w: scope %q", ErrDuplicateParameter, name)
	}

	layer, err := newMaskedConv1D(cfg.withDefaults(b.WeightNormDefault()), scope, b.backend)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", name, err)
	}
	return layer, nil
}

// MaskedConv1D creates a layer under name and applies it to input.
//
// input must be [batch, width, cfg.InputDim]; the result is
// [batch, out_width, cfg.OutputDim].
func (b *Builder[B]) MaskedConv1D(name string, cfg Conv1DConfig, input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	shape := input.Shape()
	if len(shape) != 3 {
		return nil, configErr("input", shape, "expected [batch, width, channels]")
	}
	if shape[2] != cfg.InputDim {
		return nil, configErr("input", shape, fmt.Sprintf("last axis must equal InputDim %d", cfg.InputDim))
	}
	if cfg.Padding == tensor.PaddingValid && shape[1] < cfg.FilterSize {
		return nil, configErr("input", shape, fmt.Sprintf("width shorter than filter size %d with valid padding", cfg.FilterSize))
	}

	layer, err := b.NewMaskedConv1D(name, cfg)
	if err != nil {
		return nil, err
	}
	return layer.Forward(input), nil
}
