package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel has 2*ceil(3*sigma)+1 taps, which covers
// 99.7% of the distribution. sigma <= 0 yields the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if !(sigma > 0) {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma

	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache memoizes Gaussian kernels by sigma quantized to 0.01.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel is GaussianKernel backed by a process-wide cache.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}

// convolve applies kx along rows and then ky along columns of a w*h buffer
// with ch interleaved channels. Samples past the edges repeat the edge.
func convolve(src []float32, w, h, ch int, kx, ky []float32) []float32 {
	tmp := make([]float32, len(src))
	pass(tmp, src, w, h, ch, kx, true)
	dst := make([]float32, len(src))
	pass(dst, tmp, w, h, ch, ky, false)
	return dst
}

func pass(dst, src []float32, w, h, ch int, kernel []float32, horizontal bool) {
	half := len(kernel) / 2
	n, lines := w, h
	if !horizontal {
		n, lines = h, w
	}
	idx := func(line, i int) int {
		if horizontal {
			return (line*w + i) * ch
		}
		return (i*w + line) * ch
	}

	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			o := idx(line, i)
			for c := 0; c < ch; c++ {
				dst[o+c] = 0
			}
			for k, wt := range kernel {
				j := min(max(i+k-half, 0), n-1)
				s := idx(line, j)
				for c := 0; c < ch; c++ {
					dst[o+c] += src[s+c] * wt
				}
			}
		}
	}
}
