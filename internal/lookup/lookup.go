// Package lookup builds external web-lookup URLs from a user template and
// hands them to the platform opener.
package lookup

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// URL expands a lookup template for one element: %s substitutes the symbol
// and %n the name, both URL-escaped.
func URL(template, symbol, name string) string {
	r := strings.NewReplacer(
		"%s", url.PathEscape(symbol),
		"%n", url.PathEscape(name),
	)
	return r.Replace(template)
}

// Open launches the platform browser on target. Fire and forget: the
// process is not awaited and failures are ignored; the caller's view stays
// responsive either way.
func Open(target string) {
	var err error
	switch runtime.GOOS {
	case "darwin":
		err = exec.Command("open", target).Start()
	case "windows":
		err = exec.Command("cmd", "/c", "start", target).Start()
	default:
		err = exec.Command("xdg-open", target).Start()
	}
	_ = err
}
