package parallel

import "sync"

// MinPixels is the smallest area worth splitting across workers.
const MinPixels = 256 * 256

var shared = sync.OnceValue(func() *WorkerPool { return NewWorkerPool(0) })

// Rows calls fn for disjoint row bands [y0, y1) covering [minY, maxY).
// Areas of width*(maxY-minY) below MinPixels, or a single worker, run fn
// once on the calling goroutine. fn must only touch its own rows.
func Rows(minY, maxY, width int, fn func(y0, y1 int)) {
	h := maxY - minY
	if h <= 0 {
		return
	}
	if h*width < MinPixels || h < 2 {
		fn(minY, maxY)
		return
	}
	pool := shared()
	bands := min(h, pool.Workers()*2)
	if bands < 2 {
		fn(minY, maxY)
		return
	}
	work := make([]func(), 0, bands)
	for i := range bands {
		y0 := minY + h*i/bands
		y1 := minY + h*(i+1)/bands
		if y0 < y1 {
			work = append(work, func() { fn(y0, y1) })
		}
	}
	pool.ExecuteAll(work)
}
