package runs

import "github.com/ib-77/fallible/pkg/fallible"

func Handle(r fallible.Runnable, onErr func(err error)) {
	fallible.DispatchProc(r, onErr)
}

func Must(r fallible.Runnable) {
	Handle(r, func(err error) {
		fallible.Abort[struct{}](err, r)
	})
}
