package components

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Render adapts a node builder to templ.Component. The builder runs at render
// time so it can read request-scoped values (CSP nonce) from ctx.
func Render(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// JSON marshals an object to an HTML-safe JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
