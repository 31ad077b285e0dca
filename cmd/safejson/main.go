package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	safejson "github.com/safejson/safejson"
	"github.com/safejson/safejson/tree"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "get":
		getCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "safejson CLI\n\nUsage:\n  safejson get -path /a/b/0 file.json\n  safejson check [-max-depth N] [-max-bytes N] [-dup ignore|warn|error] file.json\n\nNotes:\n  - get extracts the value at a JSON-Pointer-style path and prints it as JSON.\n  - check parses with enforcement limits and reports every diagnostic found.")
}

func getCmd(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var path string
	fs.StringVar(&path, "path", "", "JSON-Pointer-style path, e.g. /items/2/id")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	root, err := loadFile(fs.Arg(0))
	if err != nil {
		fatalf("parse: %v", err)
	}

	walk(root, path).Match(
		func(n tree.Node) {
			if tree.IsNil(n) {
				fmt.Println("null")
				return
			}
			fmt.Println(string(n.JSON()))
		},
		func(e safejson.Error) {
			for _, msg := range e.Messages() {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(1)
		},
	)
}

// loadFile parses the file as YAML when the extension says so, JSON otherwise.
func loadFile(name string) (tree.Node, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return tree.FromYAML(data)
	default:
		return tree.FromJSON(data)
	}
}

// walk resolves a /a/b/0 path against the tree, one accessor step per
// segment, so a bad path reports the precise failing step.
func walk(root tree.Node, path string) safejson.Result[tree.Node] {
	r := safejson.Ok(root)
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return r
	}
	for _, seg := range strings.Split(path, "/") {
		seg := strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		r = safejson.BindResult(r, func(n tree.Node) safejson.Result[tree.Node] {
			if i, err := strconv.Atoi(seg); err == nil {
				if a, ok := n.(*tree.Array); ok {
					return elementAt(a, i)
				}
			}
			return safejson.BindResult(safejson.AsObject(n), func(o *tree.Object) safejson.Result[tree.Node] {
				return safejson.GetProperty(o, seg)
			})
		})
	}
	return r
}

func elementAt(a *tree.Array, i int) safejson.Result[tree.Node] {
	return safejson.BindResult(safejson.GetElements(a), func(elems []tree.Node) safejson.Result[tree.Node] {
		if i < 0 || i >= len(elems) {
			return safejson.FailMessage[tree.Node](fmt.Sprintf("Array has no element at index %d.", i))
		}
		return safejson.Ok(elems[i])
	})
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var maxDepth int
	var maxBytes int64
	var dup string
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum container nesting (0 = unlimited)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	fs.StringVar(&dup, "dup", "warn", "duplicate key policy: ignore, warn, or error")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("read: %v", err)
	}

	opt := tree.DecodeOpt{MaxDepth: maxDepth, MaxBytes: maxBytes}
	warned := 0
	switch dup {
	case "ignore":
		opt.OnDuplicateKey = tree.DupIgnore
	case "error":
		opt.OnDuplicateKey = tree.DupError
	default:
		opt.OnDuplicateKey = tree.DupWarn
		opt.IssueSink = func(is tree.DupIssue) {
			warned++
			fmt.Fprintf(os.Stderr, "warning: %s at %s\n", is.Message, is.Path)
		}
	}

	if _, err := tree.FromJSON(data, opt); err != nil {
		fatalf("check: %v", err)
	}
	if warned > 0 {
		fmt.Printf("ok with %d warning(s)\n", warned)
		return
	}
	fmt.Println("ok")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
