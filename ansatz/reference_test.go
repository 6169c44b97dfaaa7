package ansatz_test

import (
	"fmt"
	"math"
	"sort"
)

// reference is a direct, map-based rendition of Equation 22 with its own
// bookkeeping: neighbours by full edge scan, string keys, sets as maps. It is
// deliberately slow and shares no code with the package under test.
type reference struct {
	n      int
	keys   []string
	alpha  map[int]float64
	beta   map[int]float64
	gamma  map[string]float64
	forceT bool // evaluate term3 even off triangles
}

func refKey(a, b int) string {
	if a > b {
		a, b = b, a
	}

	return fmt.Sprintf("%d#%d", a, b)
}

func newReference(n int, pairs [][2]int, angles []float64) *reference {
	set := map[string][2]int{}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a > b {
			a, b = b, a
		}
		set[refKey(a, b)] = [2]int{a, b}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := set[keys[i]], set[keys[j]]
		if pi[0] != pj[0] {
			return pi[0] < pj[0]
		}

		return pi[1] < pj[1]
	})

	r := &reference{n: n, keys: keys, alpha: map[int]float64{}, beta: map[int]float64{}, gamma: map[string]float64{}}
	for i := 0; i < n; i++ {
		r.alpha[i] = angles[i]
		r.beta[i] = angles[n+i]
	}
	for i, k := range keys {
		r.gamma[k] = angles[2*n+i]
	}

	return r
}

func (r *reference) ends(k string) (int, int) {
	var u, v int
	_, _ = fmt.Sscanf(k, "%d#%d", &u, &v)

	return u, v
}

func (r *reference) neighbours(x int) map[int]bool {
	out := map[int]bool{}
	for _, k := range r.keys {
		u, v := r.ends(k)
		if u == x {
			out[v] = true
		} else if v == x {
			out[u] = true
		}
	}

	return out
}

func (r *reference) edge(k string) (t1, t2, t3 float64) {
	u, v := r.ends(k)
	nu, nv := r.neighbours(u), r.neighbours(v)
	tri := map[int]bool{}
	for w := range nu {
		if nv[w] {
			tri[w] = true
		}
	}
	e := map[int]bool{}
	for w := range nv {
		if w != u {
			e[w] = true
		}
	}
	d := map[int]bool{}
	for w := range nu {
		if w != v {
			d[w] = true
		}
	}

	a, b := r.alpha, r.beta
	eT := math.Cos(2*b[u]) * math.Sin(2*b[v])
	for w := range e {
		eT *= math.Cos(r.gamma[refKey(w, v)])
	}
	dT := math.Sin(2*b[u]) * math.Cos(2*b[v])
	for w := range d {
		dT *= math.Cos(r.gamma[refKey(u, w)])
	}
	t1 = math.Cos(2*a[u]) * math.Cos(2*a[v]) * math.Sin(r.gamma[k]) * (eT + dT)

	outerSet := map[string]bool{}
	for w := range e {
		if !tri[w] {
			outerSet[refKey(v, w)] = true
		}
	}
	for w := range d {
		if !tri[w] {
			outerSet[refKey(u, w)] = true
		}
	}
	outer := 1.0
	for ek := range outerSet {
		outer *= math.Cos(r.gamma[ek])
	}
	p, m := 1.0, 1.0
	for f := range tri {
		guf, gvf := r.gamma[refKey(u, f)], r.gamma[refKey(v, f)]
		p *= math.Cos(guf + gvf)
		m *= math.Cos(guf - gvf)
	}
	t2 = -0.5 * math.Sin(2*a[u]) * math.Sin(2*a[v]) * outer * (p + m)
	if len(tri) > 0 || r.forceT {
		t3 = 0.5 * math.Cos(2*a[u]) * math.Sin(2*b[u]) * math.Cos(2*a[v]) * math.Sin(2*b[v]) * outer * (p - m)
	}

	return t1, t2, t3
}

func (r *reference) total() (float64, map[string]float64) {
	per := map[string]float64{}
	sum := 0.0
	for _, k := range r.keys {
		t1, t2, t3 := r.edge(k)
		c := 0.5 + 0.5*(t1+t2+t3)
		per[k] = c
		sum += c
	}

	return sum, per
}
