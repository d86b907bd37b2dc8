package nn

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/born-ml/maskconv/internal/tensor"
)

// Parameter names inside a layer scope.
const (
	FiltersName = "Filters"
	GainName    = "g"
	BiasesName  = "Biases"
)

// Bool returns a pointer to v, for the optional fields of Conv1DConfig.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Conv1DConfig configures a masked 1-D convolution layer.
//
// Layout is channel-last: input [batch, width, InputDim], filter
// [FilterSize, InputDim, OutputDim], output [batch, out_width, OutputDim].
type Conv1DConfig struct {
	InputDim   int // Input channels (required)
	OutputDim  int // Output channels (required)
	FilterSize int // Number of taps (required)

	HeInit     *bool    // He (true) or Glorot (false) scaling; default true
	Mask       MaskSpec // Autoregressive mask; zero value disables it
	Stride     int      // Convolution stride; default 1
	WeightNorm *bool    // Weight normalization; nil uses the builder default
	UseBias    *bool    // Add a per-channel bias; default true
	Gain       *float64 // Multiplier on the sampled filter; nil means 1.0

	Padding tensor.Padding // PaddingSame (default) or PaddingValid
	Rand    rand.Source    // Source for filter sampling; nil uses the global source
}

// withDefaults returns a copy with every optional field resolved.
// weightNorm is the default applied when WeightNorm is nil.
func (c Conv1DConfig) withDefaults(weightNorm bool) Conv1DConfig {
	if c.HeInit == nil {
		c.HeInit = Bool(true)
	}
	if c.Stride == 0 {
		c.Stride = 1
	}
	if c.WeightNorm == nil {
		c.WeightNorm = Bool(weightNorm)
	}
	if c.UseBias == nil {
		c.UseBias = Bool(true)
	}
	if c.Gain == nil {
		c.Gain = Float(1.0)
	}
	c.Mask = c.Mask.normalize()
	return c
}

// Validate checks the configuration. Optional fields may be unset.
func (c Conv1DConfig) Validate() error {
	if c.InputDim <= 0 {
		return configErr("InputDim", c.InputDim, "must be positive")
	}
	if c.OutputDim <= 0 {
		return configErr("OutputDim", c.OutputDim, "must be positive")
	}
	if c.FilterSize <= 0 {
		return configErr("FilterSize", c.FilterSize, "must be positive")
	}
	if c.Stride < 0 {
		return configErr("Stride", c.Stride, "must be positive")
	}
	if c.Gain != nil && (math.IsNaN(*c.Gain) || math.IsInf(*c.Gain, 0)) {
		return configErr("Gain", *c.Gain, "must be finite")
	}
	if c.Padding != tensor.PaddingSame && c.Padding != tensor.PaddingValid {
		return configErr("Padding", c.Padding, "unknown padding")
	}
	return c.Mask.Validate(c.InputDim, c.OutputDim)
}

// MaskedConv1D is a 1-D convolution layer with an optional autoregressive
// mask, optional weight normalization and optional bias.
//
// Forward computes:
//
//	w = Filters                       [K, C_in, C_out]
//	w = w * (g / ||w||)               if weight norm, per output channel
//	w = w * mask                      if masked
//	y = conv1d(x, w, stride, padding) [N, W_out, C_out]
//	y = y + Biases                    if bias
//
// The mask is a constant and is re-applied on every forward pass, so masked
// taps stay zero whatever values the filter parameter takes.
type MaskedConv1D[B tensor.Backend] struct {
	inputDim   int
	outputDim  int
	filterSize int
	stride     int
	padding    tensor.Padding
	maskSpec   MaskSpec

	filters *Parameter[B] // [K, C_in, C_out]
	g       *Parameter[B] // [C_out] or nil
	biases  *Parameter[B] // [C_out] or nil

	mask *tensor.Tensor[float32, B] // [K, C_in, C_out] or nil

	backend B
}

// NewMaskedConv1D creates a standalone layer whose parameters are named
// "Filters", "g" and "Biases". Weight normalization is off unless
// cfg.WeightNorm says otherwise.
//
// Use Builder to create layers under named scopes.
func NewMaskedConv1D[B tensor.Backend](cfg Conv1DConfig, backend B) (*MaskedConv1D[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newMaskedConv1D(cfg.withDefaults(false), NewParameterStore[B](), backend)
}

// newMaskedConv1D allocates the layer's parameters in store.
// cfg must be validated and resolved.
func newMaskedConv1D[B tensor.Backend](cfg Conv1DConfig, store *ParameterStore[B], backend B) (*MaskedConv1D[B], error) {
	filterShape := tensor.Shape{cfg.FilterSize, cfg.InputDim, cfg.OutputDim}

	mask, err := MaskTensor(cfg.FilterSize, cfg.InputDim, cfg.OutputDim, cfg.Mask, backend)
	if err != nil {
		return nil, err
	}

	// Filters: uniform with the He or Glorot standard deviation.
	fanIn, fanOut := FanInOut(cfg.InputDim, cfg.OutputDim, cfg.FilterSize, cfg.Stride, cfg.Mask.Enabled())
	stdev := FilterStdev(fanIn, fanOut, *cfg.HeInit)
	filterValues := SampleUniform(stdev, *cfg.Gain, filterShape.NumElements(), cfg.Rand)

	filterTensor, err := tensor.FromSlice(filterValues, filterShape, backend)
	if err != nil {
		return nil, fmt.Errorf("masked conv1d: filters: %w", err)
	}

	layer := &MaskedConv1D[B]{
		inputDim:   cfg.InputDim,
		outputDim:  cfg.OutputDim,
		filterSize: cfg.FilterSize,
		stride:     cfg.Stride,
		padding:    cfg.Padding,
		maskSpec:   cfg.Mask,
		mask:       mask,
		backend:    backend,
	}

	if layer.filters, err = store.Create(FiltersName, filterTensor); err != nil {
		return nil, err
	}

	// g starts at the norm of each output channel, so the first forward pass
	// uses the sampled filter unchanged.
	if *cfg.WeightNorm {
		norms := ChannelNorms(filterValues, cfg.FilterSize, cfg.InputDim, cfg.OutputDim)
		gTensor, err := tensor.FromSlice(norms, tensor.Shape{cfg.OutputDim}, backend)
		if err != nil {
			return nil, fmt.Errorf("masked conv1d: g: %w", err)
		}
		if layer.g, err = store.Create(GainName, gTensor); err != nil {
			return nil, err
		}
	}

	if *cfg.UseBias {
		if layer.biases, err = store.Create(BiasesName, Zeros(tensor.Shape{cfg.OutputDim}, backend)); err != nil {
			return nil, err
		}
	}

	return layer, nil
}

// Forward applies the layer.
//
// Input: [batch, width, input_dim]
// Output: [batch, out_width, output_dim], where out_width = ceil(width/stride)
// for PaddingSame.
func (c *MaskedConv1D[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 3 {
		panic(fmt.Sprintf("masked conv1d: expected 3D input [N,W,C], got %dD", len(inputShape)))
	}
	if inputShape[2] != c.inputDim {
		panic(fmt.Sprintf("masked conv1d: input channels mismatch: expected %d, got %d", c.inputDim, inputShape[2]))
	}

	output := input.Conv1D(c.EffectiveFilter(), c.stride, c.padding)

	if c.biases != nil {
		// [N, W, C_out] -> [N, W, 1, C_out] + [1, 1, 1, C_out] -> [N, W, C_out].
		// Only the inserted axis is squeezed so batch or width of 1 survive.
		bias := c.biases.Tensor().Reshape(1, 1, 1, c.outputDim)
		output = output.Unsqueeze(2).Add(bias).Squeeze(2)
	}

	return output
}

// EffectiveFilter returns the filter used by Forward: weight-normalized
// and masked as configured. The Filters parameter is left untouched.
func (c *MaskedConv1D[B]) EffectiveFilter() *tensor.Tensor[float32, B] {
	filters := c.filters.Tensor()

	if c.g != nil {
		filters = WeightNorm(filters, c.g.Tensor())
	}
	if c.mask != nil {
		filters = filters.Mul(c.mask)
	}

	return filters
}

// Parameters returns Filters, then g and Biases when present.
func (c *MaskedConv1D[B]) Parameters() []*Parameter[B] {
	params := []*Parameter[B]{c.filters}
	if c.g != nil {
		params = append(params, c.g)
	}
	if c.biases != nil {
		params = append(params, c.biases)
	}
	return params
}

// Filters returns the raw filter parameter.
func (c *MaskedConv1D[B]) Filters() *Parameter[B] {
	return c.filters
}

// G returns the weight-norm gain, or nil without weight normalization.
func (c *MaskedConv1D[B]) G() *Parameter[B] {
	return c.g
}

// Biases returns the bias parameter, or nil without bias.
func (c *MaskedConv1D[B]) Biases() *Parameter[B] {
	return c.biases
}

// Mask returns the constant mask tensor, or nil when unmasked.
func (c *MaskedConv1D[B]) Mask() *tensor.Tensor[float32, B] {
	return c.mask
}

// MaskSpec returns the layer's mask descriptor.
func (c *MaskedConv1D[B]) MaskSpec() MaskSpec {
	return c.maskSpec
}

// InputDim returns the number of input channels.
func (c *MaskedConv1D[B]) InputDim() int {
	return c.inputDim
}

// OutputDim returns the number of output channels.
func (c *MaskedConv1D[B]) OutputDim() int {
	return c.outputDim
}

// FilterSize returns the number of taps.
func (c *MaskedConv1D[B]) FilterSize() int {
	return c.filterSize
}

// Stride returns the convolution stride.
func (c *MaskedConv1D[B]) Stride() int {
	return c.stride
}

// Padding returns the padding mode.
func (c *MaskedConv1D[B]) Padding() tensor.Padding {
	return c.padding
}

// WeightNorm reports whether the layer is weight-normalized.
func (c *MaskedConv1D[B]) WeightNorm() bool {
	return c.g != nil
}

// String returns a one-line summary of the layer.
func (c *MaskedConv1D[B]) String() string {
	mask := c.maskSpec.Kind.String()
	if c.maskSpec.Enabled() {
		mask = fmt.Sprintf("%s/%d", mask, c.maskSpec.Groups)
	}
	return fmt.Sprintf("MaskedConv1D(in=%d, out=%d, k=%d, stride=%d, padding=%s, mask=%s, weight_norm=%t, bias=%t)",
		c.inputDim, c.outputDim, c.filterSize, c.stride, c.padding, mask, c.g != nil, c.biases != nil)
}
