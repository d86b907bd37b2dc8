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

func TestChannelNorms(t *testing.T) {
	// [K=1, in=2, out=2]: channel 0 is (3, 4), channel 1 is (0, 1).
	norms := nn.ChannelNorms([]float32{3, 0, 4, 1}, 1, 2, 2)
	assert.InDeltaSlice(t, []float32{5, 1}, norms, 1e-6)
}

func TestWeightNorm(t *testing.T) {
	backend := cpu.New()
	values := []float32{3, 0, 4, 1}
	filters, err := tensor.FromSlice(values, tensor.Shape{1, 2, 2}, backend)
	require.NoError(t, err)

	t.Run("GainEqualsNorm", func(t *testing.T) {
		g, err := tensor.FromSlice([]float32{5, 1}, tensor.Shape{2}, backend)
		require.NoError(t, err)

		out := nn.WeightNorm(filters, g)
		assert.Equal(t, tensor.Shape{1, 2, 2}, out.Shape())
		assert.InDeltaSlice(t, values, out.Data(), 1e-6)
	})

	t.Run("Rescale", func(t *testing.T) {
		g, err := tensor.FromSlice([]float32{10, 3}, tensor.Shape{2}, backend)
		require.NoError(t, err)

		out := nn.WeightNorm(filters, g)
		assert.InDeltaSlice(t, []float32{6, 0, 8, 3}, out.Data(), 1e-5)
		// filters are not modified
		assert.Equal(t, values, filters.Data())
	})
}

func TestMaskedConv1D_WeightNormInit(t *testing.T) {
	backend := cpu.New()
	layer, err := nn.NewMaskedConv1D(nn.Conv1DConfig{
		InputDim: 4, OutputDim: 8, FilterSize: 3,
		WeightNorm: nn.Bool(true),
		Rand:       rand.NewSource(11),
	}, backend)
	require.NoError(t, err)
	require.NotNil(t, layer.G())

	filters := layer.Filters().Tensor()
	want := nn.ChannelNorms(filters.Data(), 3, 4, 8)
	assert.Equal(t, tensor.Shape{8}, layer.G().Shape())
	assert.InDeltaSlice(t, want, layer.G().Tensor().Data(), 1e-6)

	// g / ||filters|| is 1 at init, so the effective filter equals the raw one.
	assert.InDeltaSlice(t, filters.Data(), layer.EffectiveFilter().Data(), 1e-5)
}

func TestMaskedConv1D_WeightNormTracksFilters(t *testing.T) {
	backend := cpu.New()
	layer, err := nn.NewMaskedConv1D(nn.Conv1DConfig{
		InputDim: 2, OutputDim: 3, FilterSize: 3,
		WeightNorm: nn.Bool(true),
		Rand:       rand.NewSource(4),
	}, backend)
	require.NoError(t, err)

	// Doubling the raw filter leaves the normalized filter unchanged.
	before := layer.EffectiveFilter().Clone()
	data := layer.Filters().Tensor().Data()
	for i := range data {
		data[i] *= 2
	}
	assert.InDeltaSlice(t, before.Data(), layer.EffectiveFilter().Data(), 1e-5)
}
