package fallible

// Runnable is a procedure without inputs that may fail.
type Runnable func() error

// Consumer is a procedure of one input that may fail.
type Consumer[I any] func(in I) error

// BiConsumer is a procedure of two inputs that may fail.
type BiConsumer[I1, I2 any] func(in1 I1, in2 I2) error

// TriConsumer is a procedure of three inputs that may fail.
type TriConsumer[I1, I2, I3 any] func(in1 I1, in2 I2, in3 I3) error

// PolyConsumer is a variadic procedure that may fail.
type PolyConsumer[I any] func(inputs ...I) error

// Supplier produces a value and may fail.
type Supplier[O any] func() (O, error)

// Function transforms one input and may fail.
type Function[I, O any] func(in I) (O, error)

// BiFunction transforms two inputs and may fail.
type BiFunction[I1, I2, O any] func(in1 I1, in2 I2) (O, error)

// TriFunction transforms three inputs and may fail.
type TriFunction[I1, I2, I3, O any] func(in1 I1, in2 I2, in3 I3) (O, error)

// PolyFunction transforms any number of inputs and may fail.
type PolyFunction[I, O any] func(inputs ...I) (O, error)
