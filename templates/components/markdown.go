package components

import (
	"io"

	"deltasylva_site/services"

	g "maragu.dev/gomponents"
)

// Markdown renders a markdown snippet as sanitized HTML
func Markdown(src string) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		out, err := services.RenderMarkdown(src)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
