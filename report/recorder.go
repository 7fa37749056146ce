package report

// Recorder keeps a bounded growth-radius history spanning a whole run
// When the buffer fills, every other sample is dropped and the sampling stride doubles
type Recorder struct {
	limit   int
	stride  int
	pending int
	samples []float64
}

// NewRecorder creates a recorder holding at most limit samples
func NewRecorder(limit int) *Recorder {
	limit = max(limit, 2)
	return &Recorder{
		limit:   limit,
		stride:  1,
		samples: make([]float64, 0, limit),
	}
}

// Record offers a sample; only every stride-th call is kept
func (r *Recorder) Record(v float64) {
	r.pending++
	if r.pending < r.stride {
		return
	}
	r.pending = 0
	r.samples = append(r.samples, v)
	if len(r.samples) >= r.limit {
		r.compact()
	}
}

// compact halves the history keeping the later sample of each pair
func (r *Recorder) compact() {
	n := len(r.samples) / 2
	for i := 0; i < n; i++ {
		r.samples[i] = r.samples[2*i+1]
	}
	if len(r.samples)%2 == 1 {
		r.samples[n] = r.samples[len(r.samples)-1]
		n++
	}
	r.samples = r.samples[:n]
	r.stride *= 2
}

// Samples returns a copy of the retained history, oldest first
func (r *Recorder) Samples() []float64 {
	out := make([]float64, len(r.samples))
	copy(out, r.samples)
	return out
}

// Len returns the retained sample count
func (r *Recorder) Len() int { return len(r.samples) }

// Stride returns the number of Record calls per retained sample
func (r *Recorder) Stride() int { return r.stride }

// Reset drops the history, called when the simulation regenerates
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.stride = 1
	r.pending = 0
}
