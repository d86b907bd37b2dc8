package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/born-ml/maskconv/internal/backend/cpu"
	"github.com/born-ml/maskconv/internal/nn"
	"github.com/born-ml/maskconv/internal/tensor"
)

// randomInput returns a [batch, width, channels] tensor with values in [-1, 1).
func randomInput(t *testing.T, backend *cpu.CPUBackend, seed uint64, batch, width, channels int) *tensor.Tensor[float32, *cpu.CPUBackend] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float32, batch*width*channels)
	for i := range values {
		values[i] = float32(rng.Float64()*2 - 1)
	}
	x, err := tensor.FromSlice(values, tensor.Shape{batch, width, channels}, backend)
	require.NoError(t, err)
	return x
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	backend := cpu.New()

	data, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	param := nn.NewParameter("conv/Biases", data)

	assert.Equal(t, "conv/Biases", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Equal(t, tensor.Shape{3}, param.Shape())
}

// TestSequential_CausalStack chains one MaskA layer and two MaskB layers.
func TestSequential_CausalStack(t *testing.T) {
	backend := cpu.New()
	b := nn.NewBuilder(backend, nn.BuilderConfig{WeightNorm: true})

	first, err := b.NewMaskedConv1D("conv0", nn.Conv1DConfig{
		InputDim: 3, OutputDim: 6, FilterSize: 3,
		Mask: nn.MaskSpec{Kind: nn.MaskA, Groups: 3},
		Rand: rand.NewSource(1),
	})
	require.NoError(t, err)

	model := nn.NewSequential[*cpu.CPUBackend](first)
	for _, name := range []string{"conv1", "conv2"} {
		layer, err := b.NewMaskedConv1D(name, nn.Conv1DConfig{
			InputDim: 6, OutputDim: 6, FilterSize: 3,
			Mask: nn.MaskSpec{Kind: nn.MaskB, Groups: 3},
			Rand: rand.NewSource(2),
		})
		require.NoError(t, err)
		model.Add(layer)
	}

	assert.Equal(t, 3, model.Len())
	assert.Len(t, model.Parameters(), 9)
	assert.Contains(t, model.String(), "(2): MaskedConv1D")

	x := randomInput(t, backend, 3, 2, 7, 3)
	y := model.Forward(x)
	assert.Equal(t, tensor.Shape{2, 7, 6}, y.Shape())

	// The stack stays causal: changing the last position leaves earlier outputs alone.
	x2 := x.Clone()
	x2.Set(x2.At(0, 6, 0)+1, 0, 6, 0)
	y2 := model.Forward(x2)
	for pos := 0; pos < 6; pos++ {
		for c := 0; c < 6; c++ {
			assert.InDelta(t, y.At(0, pos, c), y2.At(0, pos, c), 1e-6, "pos=%d c=%d", pos, c)
		}
	}
}
