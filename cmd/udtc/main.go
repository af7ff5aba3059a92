/*
Command udtc compiles a UDT document and prints the resulting node tree.

Usage:

	udtc [flags] document.udt

Flags:

	-config file     read configuration from a NestedText file
	-trace level     trace level for all compiler stages (Debug, Info, Error)
	-import n=path   register the stylesheet at path under name n; repeatable
	-templates file  declare the templates of file for the document
	-dot             print the tree in GraphViz DOT format

Configuration files named "udtc.nt" are searched for at the standard
configuration locations of the operating system. Keys are those of
udt.OptionsFromConfig, plus trace levels of the form "trace.udt.style".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/udt"
	"github.com/npillmayer/udt/dom/domdbg"
)

var stages = []string{"udt.lexer", "udt.expr", "udt.markup", "udt.template",
	"udt.style", "udt.cascade", "udt.dom", "udt.compiler"}

type imports map[string]string

func (imp imports) String() string {
	var b strings.Builder
	for n, p := range imp {
		fmt.Fprintf(&b, "%s=%s ", n, p)
	}
	return strings.TrimSpace(b.String())
}

func (imp imports) Set(s string) error {
	n, p, ok := strings.Cut(s, "=")
	if !ok || n == "" || p == "" {
		return fmt.Errorf("expecting name=path, have %q", s)
	}
	imp[n] = p
	return nil
}

func main() {
	var (
		confFile  = flag.String("config", "", "configuration file (NestedText)")
		level     = flag.String("trace", "", "trace level for all compiler stages")
		templates = flag.String("templates", "", "file with template declarations")
		dot       = flag.Bool("dot", false, "output GraphViz DOT")
		imps      = imports{}
	)
	flag.Var(imps, "import", "named stylesheet as name=path")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] document.udt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	conf := koanfadapter.New(nil, "udtc", []string{".nt"})
	conf.InitDefaults()
	if *confFile != "" {
		if err := conf.Koanf().Load(file.Provider(*confFile), koanfadapter.Parser()); err != nil {
			fail(fmt.Errorf("reading configuration %s: %w", *confFile, err))
		}
	}
	if *level != "" {
		for _, s := range stages {
			conf.Set("trace."+s, *level)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fail(err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	//
	c := udt.New(udt.OptionsFromConfig(conf))
	for name, path := range imps {
		src, err := os.ReadFile(path)
		if err != nil {
			fail(err)
		}
		c.Stylesheets.Register(name, string(src))
	}
	if *templates != "" {
		src, err := os.ReadFile(*templates)
		if err != nil {
			fail(err)
		}
		if err = c.DeclareTemplates(string(src), *templates); err != nil {
			fail(err)
		}
	}
	path := flag.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	doc, err := c.Compile(string(src), path)
	if err != nil {
		fail(err)
	}
	if doc.Root == nil {
		tracing.Select("udt.compiler").Infof("%s: empty document", path)
		return
	}
	if *dot {
		if err = domdbg.ToGraphViz(doc.Root, os.Stdout, nil); err != nil {
			fail(err)
		}
		return
	}
	fmt.Print(domdbg.Print(doc.Root))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
