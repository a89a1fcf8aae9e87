package handlers

import (
	"context"

	"github.com/maruel/cltog/internal/i18n"
	"github.com/maruel/cltog/internal/server/reqctx"
)

// requestLang returns the explicit language when set, otherwise the best
// match for the request's Accept-Language header.
func requestLang(ctx context.Context, explicit string) i18n.Lang {
	if l, ok := i18n.Parse(explicit); ok {
		return l
	}
	return i18n.Match(reqctx.AcceptLanguage(ctx))
}
