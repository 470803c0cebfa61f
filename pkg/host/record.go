package host

import "sync"

// Call is one recorded invocation on a double
type Call struct {
	Method string
	Args   []interface{}
}

// Recorder keeps the calls made on a double, in order
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Record appends a call
func (r *Recorder) Record(method string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Args: args})
}

// Calls returns a copy of every recorded call
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsTo returns the recorded calls to method
func (r *Recorder) CallsTo(method string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns how many times method was called
func (r *Recorder) CallCount(method string) int {
	return len(r.CallsTo(method))
}

// LastCall returns the most recent call to method
func (r *Recorder) LastCall(method string) (Call, bool) {
	calls := r.CallsTo(method)
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

// ResetCalls forgets every recorded call
func (r *Recorder) ResetCalls() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
