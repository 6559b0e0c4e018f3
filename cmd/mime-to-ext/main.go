// mime-to-ext is the command line front end for the mimedb lookup tables.
//
// It takes exactly one positional argument. An argument containing a slash is
// treated as a MIME type and resolved to its registered extensions; anything
// else is treated as an extension and resolved to its canonical MIME type.
// Unknown input prints a single "?".
//
// Exit codes: 0 on a successful lookup, 1 when the argument is missing,
// 2 when the input is unknown.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/GaneshJadhavOnGitHub/mime-to-ext/mimedb"
	flag "github.com/spf13/pflag"
)

func main() {
	firstOnly := flag.BoolP("first", "1", false,
		"print only the preferred extension for a MIME type")
	status := flag.Bool("status", false,
		"check that the embedded dataset is usable and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mime-to-ext [flags] <mime-type|extension>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *status {
		if err := mimedb.Status(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("ok")
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	out, ok := resolve(flag.Arg(0), *firstOnly)
	if !ok {
		fmt.Println("?")
		os.Exit(2)
	}
	fmt.Println(out)
}

func resolve(arg string, firstOnly bool) (string, bool) {
	if !strings.Contains(arg, "/") {
		return mimedb.TypeByExtension(arg)
	}
	if firstOnly {
		return mimedb.PreferredExtension(arg)
	}
	exts, ok := mimedb.ExtensionsByType(arg)
	if !ok || len(exts) == 0 {
		return "", false
	}
	return strings.Join(exts, ", "), true
}
