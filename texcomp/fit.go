package texcomp

import "math"

// vec4 is a point in up to four colour channels. Unused channels stay zero.
type vec4 [4]float64

func dot(a, b vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func normalize(v vec4) vec4 {
	l := math.Sqrt(dot(v, v))
	if l == 0 {
		return vec4{}
	}
	return vec4{v[0] / l, v[1] / l, v[2] / l, v[3] / l}
}

func scale(v vec4, s float64) vec4 {
	return vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func add(a, b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func distSq(a, b vec4) float64 {
	d := vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
	return dot(d, d)
}

func mean(pts []vec4) vec4 {
	var m vec4
	for _, p := range pts {
		m = add(m, p)
	}
	return scale(m, 1/float64(len(pts)))
}

// principalAxis estimates the dominant eigenvector of the covariance of pts
// by power iteration. It returns the zero vector for a flat set.
func principalAxis(pts []vec4, avg vec4, channels int) vec4 {
	var cov [4][4]float64
	for _, p := range pts {
		var d vec4
		for c := 0; c < channels; c++ {
			d[c] = p[c] - avg[c]
		}
		for i := 0; i < channels; i++ {
			for j := 0; j < channels; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}

	var v vec4
	for c := 0; c < channels; c++ {
		v[c] = 1
	}
	v = normalize(v)
	for iter := 0; iter < 8; iter++ {
		var next vec4
		for i := 0; i < channels; i++ {
			for j := 0; j < channels; j++ {
				next[i] += cov[i][j] * v[j]
			}
		}
		v = normalize(next)
	}
	return v
}

// lineFit returns the two ends of the segment along the principal axis of
// pts that spans all of their projections. lo is the end at the smallest
// projection.
func lineFit(pts []vec4, channels int) (lo, hi vec4) {
	avg := mean(pts)
	axis := principalAxis(pts, avg, channels)

	minProj, maxProj := math.MaxFloat64, -math.MaxFloat64
	for _, p := range pts {
		proj := dot(p, axis)
		minProj = math.Min(minProj, proj)
		maxProj = math.Max(maxProj, proj)
	}
	avgProj := dot(avg, axis)
	lo = add(avg, scale(axis, minProj-avgProj))
	hi = add(avg, scale(axis, maxProj-avgProj))
	return lo, hi
}

// leastSquaresEndpoints returns the endpoints e0, e1 minimising
// sum |(1-t)e0 + t*e1 - p|^2 over pts and their weights t in [0, 1].
// ok is false when every weight is the same.
func leastSquaresEndpoints(pts []vec4, t []float64) (e0, e1 vec4, ok bool) {
	var a, b, c float64
	var r0, r1 vec4
	for i, p := range pts {
		u := 1 - t[i]
		a += u * u
		b += u * t[i]
		c += t[i] * t[i]
		r0 = add(r0, scale(p, u))
		r1 = add(r1, scale(p, t[i]))
	}
	det := a*c - b*b
	if math.Abs(det) < 1e-9 {
		return vec4{}, vec4{}, false
	}
	e0 = scale(add(scale(r0, c), scale(r1, -b)), 1/det)
	e1 = scale(add(scale(r1, a), scale(r0, -b)), 1/det)
	return e0, e1, true
}
