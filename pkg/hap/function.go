package hap

// StringFunc supplies string behavior from closures.
// A nil Read makes the characteristic write-only, a nil Write read-only.
type StringFunc struct {
	Read  func() string
	Write func(string)
}

func (f *StringFunc) CanRead() bool  { return f.Read != nil }
func (f *StringFunc) CanWrite() bool { return f.Write != nil }

func (f *StringFunc) ReadString() string {
	if f.Read == nil {
		return ""
	}
	return f.Read()
}

func (f *StringFunc) WriteString(s string) {
	if f.Write != nil {
		f.Write(s)
	}
}

// FloatFunc supplies float behavior and optional range overrides.
type FloatFunc struct {
	Read  func() float32
	Write func(float32)
	Max   Optional[float32]
	Min   Optional[float32]
}

func (f *FloatFunc) CanRead() bool  { return f.Read != nil }
func (f *FloatFunc) CanWrite() bool { return f.Write != nil }

func (f *FloatFunc) ReadFloat() float32 {
	if f.Read == nil {
		return 0
	}
	return f.Read()
}

func (f *FloatFunc) WriteFloat(v float32) {
	if f.Write != nil {
		f.Write(v)
	}
}

func (f *FloatFunc) MaxFloat() (float32, bool) { return f.Max.Get() }
func (f *FloatFunc) MinFloat() (float32, bool) { return f.Min.Get() }

// IntFunc supplies int behavior plus optional range and valid-value overrides.
type IntFunc struct {
	Read  func() int
	Write func(int)
	Max   Optional[int]
	Min   Optional[int]
	Valid Optional[[]int]
}

func (f *IntFunc) CanRead() bool  { return f.Read != nil }
func (f *IntFunc) CanWrite() bool { return f.Write != nil }

func (f *IntFunc) ReadInt() int {
	if f.Read == nil {
		return 0
	}
	return f.Read()
}

func (f *IntFunc) WriteInt(v int) {
	if f.Write != nil {
		f.Write(v)
	}
}

func (f *IntFunc) MaxInt() (int, bool)        { return f.Max.Get() }
func (f *IntFunc) MinInt() (int, bool)        { return f.Min.Get() }
func (f *IntFunc) ValidValues() ([]int, bool) { return f.Valid.Get() }

// FloatOption configures a functional float characteristic.
type FloatOption func(*FloatFunc)

// WithFloatMax overrides the maximum value.
func WithFloatMax(v float32) FloatOption {
	return func(f *FloatFunc) { f.Max = Some(v) }
}

// WithFloatMin overrides the minimum value.
func WithFloatMin(v float32) FloatOption {
	return func(f *FloatFunc) { f.Min = Some(v) }
}

// IntOption configures a functional int characteristic.
type IntOption func(*IntFunc)

// WithIntMax overrides the maximum value.
func WithIntMax(v int) IntOption {
	return func(f *IntFunc) { f.Max = Some(v) }
}

// WithIntMin overrides the minimum value.
func WithIntMin(v int) IntOption {
	return func(f *IntFunc) { f.Min = Some(v) }
}

// WithValidValues overrides the valid-value set. values is copied.
func WithValidValues(values ...int) IntOption {
	return func(f *IntFunc) { f.Valid = Some(cloneValid(values)) }
}
