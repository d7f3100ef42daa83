package consumers

import "github.com/ib-77/fallible/pkg/fallible"

func Handle[I any](c fallible.Consumer[I], in I, onErr func(err error, in I)) {
	fallible.DispatchProc(
		func() error { return c(in) },
		func(err error) { onErr(err, in) })
}

func Handle2[I1, I2 any](c fallible.BiConsumer[I1, I2], in1 I1, in2 I2,
	onErr func(err error, in1 I1, in2 I2)) {
	fallible.DispatchProc(
		func() error { return c(in1, in2) },
		func(err error) { onErr(err, in1, in2) })
}

func Handle3[I1, I2, I3 any](c fallible.TriConsumer[I1, I2, I3], in1 I1, in2 I2, in3 I3,
	onErr func(err error, in1 I1, in2 I2, in3 I3)) {
	fallible.DispatchProc(
		func() error { return c(in1, in2, in3) },
		func(err error) { onErr(err, in1, in2, in3) })
}

// HandleN takes the callback before the inputs so the inputs can stay variadic.
func HandleN[I any](c fallible.PolyConsumer[I], onErr func(err error, inputs ...I), inputs ...I) {
	fallible.DispatchProc(
		func() error { return c(inputs...) },
		func(err error) { onErr(err, inputs...) })
}

func Must[I any](c fallible.Consumer[I], in I) {
	Handle(c, in, func(err error, in I) {
		fallible.Abort[struct{}](err, c, in)
	})
}

func Must2[I1, I2 any](c fallible.BiConsumer[I1, I2], in1 I1, in2 I2) {
	Handle2(c, in1, in2, func(err error, in1 I1, in2 I2) {
		fallible.Abort[struct{}](err, c, in1, in2)
	})
}

func Must3[I1, I2, I3 any](c fallible.TriConsumer[I1, I2, I3], in1 I1, in2 I2, in3 I3) {
	Handle3(c, in1, in2, in3, func(err error, in1 I1, in2 I2, in3 I3) {
		fallible.Abort[struct{}](err, c, in1, in2, in3)
	})
}

func MustN[I any](c fallible.PolyConsumer[I], inputs ...I) {
	HandleN(c, func(err error, inputs ...I) {
		fallible.Abort[struct{}](err, c, fallible.Args(inputs)...)
	}, inputs...)
}
