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

func TestBuilder_MaskedConv1D_EndToEnd(t *testing.T) {
	backend := cpu.New()
	b := nn.NewBuilder(backend, nn.BuilderConfig{})

	x := randomInput(t, backend, 1, 2, 10, 4)
	cfg := nn.Conv1DConfig{
		InputDim: 4, OutputDim: 8, FilterSize: 3,
		Mask: nn.MaskSpec{Kind: nn.MaskB, Groups: 2},
		Rand: rand.NewSource(99),
	}

	y, err := b.MaskedConv1D("conv", cfg, x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 10, 8}, y.Shape())
	assert.Equal(t, []string{"conv/Biases", "conv/Filters"}, b.Store().Names())

	// The center tap of the filter actually used follows the i > j group rule.
	filters, ok := b.Store().Get("conv/Filters")
	require.True(t, ok)
	mask, err := nn.MaskTensor(3, 4, 8, cfg.Mask, backend)
	require.NoError(t, err)
	effective := filters.Tensor().Mul(mask)
	for ci := 0; ci < 4; ci++ {
		for co := 0; co < 8; co++ {
			if ci%2 > co%2 {
				assert.Zero(t, effective.At(1, ci, co), "ci=%d co=%d", ci, co)
			} else {
				assert.NotZero(t, effective.At(1, ci, co), "ci=%d co=%d", ci, co)
			}
			assert.Zero(t, effective.At(2, ci, co))
		}
	}

	want := referenceConv1D(x.Data(), effective.Data(), 2, 10, 4, 3, 8, 1, tensor.PaddingSame)
	assert.InDeltaSlice(t, want, y.Data(), 1e-5)
}

func TestBuilder_WeightNormDefault(t *testing.T) {
	backend := cpu.New()
	cfg := nn.Conv1DConfig{InputDim: 2, OutputDim: 2, FilterSize: 3}

	b := nn.NewBuilder(backend, nn.BuilderConfig{})
	assert.False(t, b.WeightNormDefault())

	plain, err := b.NewMaskedConv1D("plain", cfg)
	require.NoError(t, err)
	assert.False(t, plain.WeightNorm())

	b.EnableWeightNormDefault()
	assert.True(t, b.WeightNormDefault())

	normed, err := b.NewMaskedConv1D("normed", cfg)
	require.NoError(t, err)
	assert.True(t, normed.WeightNorm())

	override := cfg
	override.WeightNorm = nn.Bool(false)
	opted, err := b.NewMaskedConv1D("opted_out", override)
	require.NoError(t, err)
	assert.False(t, opted.WeightNorm())

	assert.Equal(t, []string{
		"normed/Biases", "normed/Filters", "normed/g",
		"opted_out/Biases", "opted_out/Filters",
		"plain/Biases", "plain/Filters",
	}, b.Store().Names())

	// A config-level default applies from the start.
	b2 := nn.NewBuilder(backend, nn.BuilderConfig{WeightNorm: true})
	layer, err := b2.NewMaskedConv1D("conv", cfg)
	require.NoError(t, err)
	assert.True(t, layer.WeightNorm())
}

func TestBuilder_Errors(t *testing.T) {
	backend := cpu.New()
	b := nn.NewBuilder(backend, nn.BuilderConfig{})
	cfg := nn.Conv1DConfig{InputDim: 4, OutputDim: 8, FilterSize: 3}

	_, err := b.NewMaskedConv1D("conv", cfg)
	require.NoError(t, err)

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := b.NewMaskedConv1D("conv", cfg)
		assert.ErrorIs(t, err, nn.ErrDuplicateParameter)
		assert.Len(t, b.Store().Scope("conv").Names(), 2)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := b.NewMaskedConv1D("", cfg)
		assert.ErrorIs(t, err, nn.ErrInvalidConfig)
	})

	t.Run("NestedName", func(t *testing.T) {
		_, err := b.NewMaskedConv1D("e/f", cfg)
		assert.ErrorIs(t, err, nn.ErrInvalidConfig)
		assert.Empty(t, b.Store().Scope("e").Names())

		_, err = b.NewMaskedConv1D("e", cfg)
		assert.NoError(t, err)
	})

	t.Run("SharedPrefix", func(t *testing.T) {
		_, err := b.NewMaskedConv1D("conv1", cfg)
		assert.NoError(t, err)
	})

	t.Run("InvalidMask", func(t *testing.T) {
		bad := cfg
		bad.Mask = nn.MaskSpec{Kind: nn.MaskA, Groups: 3}
		_, err := b.NewMaskedConv1D("bad_mask", bad)
		assert.ErrorIs(t, err, nn.ErrInvalidMask)
		assert.Contains(t, err.Error(), `layer "bad_mask"`)
		assert.Empty(t, b.Store().Scope("bad_mask").Names())
	})

	t.Run("InputRank", func(t *testing.T) {
		_, err := b.MaskedConv1D("rank", cfg, tensor.Zeros[float32](tensor.Shape{10, 4}, backend))
		assert.ErrorIs(t, err, nn.ErrInvalidConfig)
	})

	t.Run("InputChannels", func(t *testing.T) {
		_, err := b.MaskedConv1D("channels", cfg, tensor.Zeros[float32](tensor.Shape{2, 10, 3}, backend))
		assert.ErrorIs(t, err, nn.ErrInvalidConfig)
		assert.Empty(t, b.Store().Scope("channels").Names())
	})

	t.Run("ValidTooShort", func(t *testing.T) {
		valid := cfg
		valid.Padding = tensor.PaddingValid
		_, err := b.MaskedConv1D("short", valid, tensor.Zeros[float32](tensor.Shape{2, 2, 4}, backend))
		assert.ErrorIs(t, err, nn.ErrInvalidConfig)
	})
}
