package context

import (
	"context"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
)

// WithIdentity attaches the authenticated identity to the context.
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

// GetIdentity returns the authenticated identity stored by the auth middleware.
func GetIdentity(ctx context.Context) (*model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return nil, false
	}
	identity, ok := v.(*model.Identity)
	return identity, ok
}
