// Package web embeds the browser forms that post payloads to the API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.html
var pages embed.FS

// Pages lists the page identifiers that may be served.
var Pages = []string{"billing-generator", "voucher-generator"}

// Page returns the HTML of the named page.
func Page(name string) ([]byte, error) {
	return fs.ReadFile(pages, "pages/"+name+".html")
}
