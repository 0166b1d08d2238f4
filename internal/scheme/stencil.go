package scheme

// upwind returns speed·Δf at flat index k along stride, biased toward the
// side the flow comes from.
func upwind(f []float64, k, stride int, speed float64) float64 {
	if speed >= 0 {
		return speed * (f[k] - f[k-stride])
	}
	return speed * (f[k+stride] - f[k])
}

// second returns the central second difference f[k+s] - 2f[k] + f[k-s].
func second(f []float64, k, stride int) float64 {
	return f[k+stride] - 2*f[k] + f[k-stride]
}

// central returns f[k+s] - f[k-s].
func central(f []float64, k, stride int) float64 {
	return f[k+stride] - f[k-stride]
}

// keep copies src into a reusable buffer.
func keep(buf *[]float64, src []float64) []float64 {
	if cap(*buf) < len(src) {
		*buf = make([]float64, len(src))
	}
	*buf = (*buf)[:len(src)]
	copy(*buf, src)
	return *buf
}

// interior calls fn for every interior flat index of an nx×ny grid.
func interior(nx, ny int, fn func(k int)) {
	for j := 1; j < ny-1; j++ {
		for i := 1; i < nx-1; i++ {
			fn(j*nx + i)
		}
	}
}
