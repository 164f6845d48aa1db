// Package open hands watch URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/media"
)

// WatchURL turns a result locator back into the URL a browser can play.
// Playlist envelopes have no locator and yield "".
func WatchURL(r *media.Result) string {
	return strings.TrimPrefix(r.URI, constant.StreamPrefix)
}

// Watch opens the result in the default browser, or in app when given.
func Watch(r *media.Result, app string) error {
	url := WatchURL(r)
	if url == "" {
		return fmt.Errorf("%q has nothing to open", r.Title)
	}
	return StartWith(url, app)
}

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	return StartWith(input, "")
}

// StartWith is Start using app instead of the default handler.
func StartWith(input, app string) error {
	cmd, ok := commandWith(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("don't know how to open links on %s", runtime.GOOS)
	}
	return cmd.Start()
}

type launcher struct {
	// argv for the default handler
	open func(input string) []string
	// argv for a named application
	with func(input, app string) []string
}

var launchers = map[string]launcher{
	constant.Linux: {
		open: func(in string) []string { return []string{"xdg-open", in} },
		with: func(in, app string) []string { return []string{app, in} },
	},
	constant.Darwin: {
		open: func(in string) []string { return []string{"open", in} },
		with: func(in, app string) []string { return []string{"open", "-a", app, in} },
	},
	constant.Windows: {
		open: func(in string) []string {
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return []string{rundll, "url.dll,FileProtocolHandler", in}
		},
		// start splits its argument on unescaped &
		with: func(in, app string) []string {
			return []string{"cmd", "/C", "start", "", app, strings.ReplaceAll(in, "&", "^&")}
		},
	},
	constant.Android: {
		open: func(in string) []string { return []string{"termux-open-url", in} },
		with: func(in, _ string) []string { return []string{"termux-open-url", in} },
	},
}

func command(goos, input string) (*exec.Cmd, bool) {
	return commandWith(goos, input, "")
}

func commandWith(goos, input, app string) (*exec.Cmd, bool) {
	l, ok := launchers[goos]
	if !ok {
		return nil, false
	}

	argv := l.open(input)
	if app != "" {
		argv = l.with(input, app)
	}
	return exec.Command(argv[0], argv[1:]...), true
}
