package suppliers

import (
	"context"

	"github.com/ib-77/fallible/pkg/fallible"
)

func Handle[O any](s fallible.Supplier[O], onErr func(err error) O) O {
	return fallible.Dispatch[O](s, onErr)
}

func Must[O any](s fallible.Supplier[O]) O {
	return Handle(s, func(err error) O {
		return fallible.Abort[O](err, s)
	})
}

func Optional[O any](ctx context.Context, s fallible.Supplier[O]) fallible.Optional[O] {
	return fallible.Settle(ctx, fallible.Attempt[O](s), s)
}
