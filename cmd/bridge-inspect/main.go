package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	// Registers every binding with the wrapper package.
	_ "github.com/wippyai/cef-bridge/bridge"
	"github.com/wippyai/cef-bridge/idl"
	"github.com/wippyai/cef-bridge/wrapper"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List bound interfaces and exit")
		iface       = flag.String("iface", "", "Describe the methods of one interface")
		counts      = flag.Bool("counts", false, "Print every binding with its live instance count")
		verify      = flag.Bool("verify", false, "Check every capi struct against its description")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case *verify:
		errs := idl.VerifyAll()
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		if len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "%d interfaces drifted\n", len(errs))
			os.Exit(1)
		}
		fmt.Printf("%d interfaces verified\n", len(idl.All()))

	case *iface != "":
		desc, ok := idl.Lookup(*iface)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown interface %q\n", *iface)
			os.Exit(1)
		}
		printInterface(desc)

	case *counts:
		for _, b := range wrapper.Bindings() {
			fmt.Printf("%-28s %-6s %d\n", b.Name, b.Direction, b.Live)
		}

	case *list:
		for _, desc := range idl.All() {
			fmt.Println(interfaceLine(desc))
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: bridge-inspect -list")
		fmt.Fprintln(os.Stderr, "       bridge-inspect -iface <name>")
		fmt.Fprintln(os.Stderr, "       bridge-inspect -verify")
		fmt.Fprintln(os.Stderr, "       bridge-inspect -counts")
		fmt.Fprintln(os.Stderr, "       bridge-inspect -i  (interactive mode)")
		os.Exit(1)
	}
}

func interfaceLine(desc idl.Interface) string {
	name := desc.Name
	if desc.Parent != "" {
		name += " : " + desc.Parent
	}
	return fmt.Sprintf("%-28s %-7s %d methods", name, desc.Side, len(desc.Methods))
}

func printInterface(desc idl.Interface) {
	fmt.Println(interfaceLine(desc))
	for _, m := range desc.Methods {
		fmt.Printf("  %s\n", methodSignature(m))
	}
}

// methodSignature renders a method as Name(param class type, ...) -> result.
func methodSignature(m idl.Method) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name + " " + paramType(p)
		if !p.Required {
			params[i] += "?"
		}
	}
	sig := m.Name + "(" + strings.Join(params, ", ") + ")"
	if m.Result != nil {
		sig += " -> " + paramType(*m.Result)
	}
	return sig
}

func paramType(p idl.Param) string {
	switch {
	case p.Ref != "":
		return p.Class.String() + " " + p.Ref
	case p.Type != nil:
		return p.Class.String() + " " + witTypeStr(p.Type)
	default:
		return p.Class.String()
	}
}
