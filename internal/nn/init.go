package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/maskconv/internal/tensor"
)

// FanInOut returns the fan-in and fan-out of a 1-D convolution filter.
//
//	fan_in  = inputDim * filterSize
//	fan_out = outputDim * filterSize / stride
//
// When the filter is masked both values are halved. This only approximates the
// connectivity of a masked filter; it is kept so that initial scales match
// models trained with the same rule.
func FanInOut(inputDim, outputDim, filterSize, stride int, masked bool) (fanIn, fanOut float64) {
	fanIn = float64(inputDim * filterSize)
	fanOut = float64(outputDim*filterSize) / float64(stride)

	if masked {
		fanIn /= 2
		fanOut /= 2
	}
	return fanIn, fanOut
}

// FilterStdev returns the initialization standard deviation.
//
//	He:     sqrt(4 / (fan_in + fan_out))
//	Glorot: sqrt(2 / (fan_in + fan_out))
func FilterStdev(fanIn, fanOut float64, heInit bool) float64 {
	if heInit {
		return math.Sqrt(4 / (fanIn + fanOut))
	}
	return math.Sqrt(2 / (fanIn + fanOut))
}

// UniformBound returns the half-width of the uniform distribution whose
// standard deviation is stdev: stdev * sqrt(3).
func UniformBound(stdev float64) float64 {
	return stdev * math.Sqrt(3)
}

// SampleUniform draws n values from Uniform(-stdev*sqrt(3), stdev*sqrt(3)),
// multiplies each by gain and returns them as float32.
//
// A nil src draws from gonum's global source.
func SampleUniform(stdev, gain float64, n int, src rand.Source) []float32 {
	bound := UniformBound(stdev)
	dist := distuv.Uniform{
		Min: -bound,
		Max: bound,
		Src: src,
	}

	values := make([]float32, n)
	for i := range values {
		values[i] = float32(dist.Rand()) * float32(gain)
	}
	return values
}

// UniformStdev creates a tensor of the given shape filled by SampleUniform.
//
// Example:
//
//	fanIn, fanOut := nn.FanInOut(4, 8, 3, 1, false)
//	stdev := nn.FilterStdev(fanIn, fanOut, true)
//	filters := nn.UniformStdev(stdev, 1.0, tensor.Shape{3, 4, 8}, nil, backend)
func UniformStdev[B tensor.Backend](stdev, gain float64, shape tensor.Shape, src rand.Source, backend B) *tensor.Tensor[float32, B] {
	t := tensor.Zeros[float32](shape, backend)
	copy(t.Data(), SampleUniform(stdev, gain, shape.NumElements(), src))
	return t
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}
