package diag

// Sink accumulates diagnostics for exactly one pipeline run. It is owned by
// the in-flight run and must be Reset at the start of every run; arrival
// order (stage order, then within-stage order) is preserved.
type Sink struct {
	items []Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

// Reset drops all accumulated diagnostics, keeping the backing storage.
func (s *Sink) Reset() {
	s.items = s.items[:0]
}

// Append extends the sink with a batch, preserving batch order.
func (s *Sink) Append(batch []Diagnostic) {
	s.items = append(s.items, batch...)
}

// Push appends a single diagnostic.
func (s *Sink) Push(d Diagnostic) {
	s.items = append(s.items, d)
}

// Empty reports whether no diagnostic has been recorded yet. The lint gate
// keys off this.
func (s *Sink) Empty() bool {
	return len(s.items) == 0
}

func (s *Sink) Len() int {
	return len(s.items)
}

// Items returns the accumulated diagnostics. The slice aliases the sink's
// storage: callers must not modify it.
func (s *Sink) Items() []Diagnostic {
	return s.items
}

// Flat is one flattened diagnostic record for external consumption.
type Flat struct {
	Start    uint32 `json:"start" msgpack:"start"`
	End      uint32 `json:"end" msgpack:"end"`
	Severity string `json:"severity" msgpack:"severity"`
	Message  string `json:"message" msgpack:"message"`
}

// Flatten projects every diagnostic into flat records: one record per label,
// or a single [0,0) record when the diagnostic has no labels.
func (s *Sink) Flatten() []Flat {
	out := make([]Flat, 0, len(s.items))
	for _, d := range s.items {
		if len(d.Labels) == 0 {
			out = append(out, Flat{
				Start:    0,
				End:      0,
				Severity: d.Severity.String(),
				Message:  d.Message,
			})
			continue
		}
		for _, l := range d.Labels {
			out = append(out, Flat{
				Start:    l.Span.Start,
				End:      l.Span.End,
				Severity: d.Severity.String(),
				Message:  d.Message,
			})
		}
	}
	return out
}
