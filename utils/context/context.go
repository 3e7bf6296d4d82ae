package context

import (
	"context"

	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
)

func WithSession(ctx context.Context, state model.SessionState) context.Context {
	return context.WithValue(ctx, constant.SessionKey, state)
}

func GetSession(ctx context.Context) (model.SessionState, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return model.SessionState{}, false
	}
	state, ok := v.(model.SessionState)
	return state, ok
}
