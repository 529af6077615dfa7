package scope

// Frame is a component context frame. Lookups fall through to parent frames.
type Frame struct {
	parent *Frame
	values map[any]any
}

// Set stores a value on this frame.
func (f *Frame) Set(key, value any) {
	if f.values == nil {
		f.values = make(map[any]any)
	}
	f.values[key] = value
}

// Get looks key up on this frame and then its ancestors.
func (f *Frame) Get(key any) (any, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if v, ok := fr.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Stack tracks the active context frame.
type Stack struct {
	current *Frame
}

// Current returns the active frame, or nil.
func (s *Stack) Current() *Frame {
	return s.current
}

// Push activates a new frame holding a copy of values.
func (s *Stack) Push(values map[any]any) *Frame {
	f := &Frame{parent: s.current}
	for k, v := range values {
		f.Set(k, v)
	}
	s.current = f
	return f
}

// Pop deactivates the current frame.
func (s *Stack) Pop() {
	if s.current != nil {
		s.current = s.current.parent
	}
}

// Get looks key up from the active frame.
func (s *Stack) Get(key any) (any, bool) {
	return s.current.Get(key)
}

// NewFrame creates an empty frame whose lookups fall through to parent.
func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent}
}

// Swap makes f the active frame and returns the previous one.
func (s *Stack) Swap(f *Frame) *Frame {
	prev := s.current
	s.current = f
	return prev
}
