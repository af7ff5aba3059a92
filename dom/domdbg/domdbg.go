/*
Package domdbg implements helpers to debug a compiled node tree.

Print renders a tree as indented text, ToGraphViz as a GraphViz (DOT)
diagram, including a selection of resolved style properties.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/udt/dom"
	"github.com/xlab/treeprint"
)

// Print renders the tree rooted at root as indented text.
func Print(root *dom.Node) string {
	if root == nil {
		return "<empty>\n"
	}
	t := treeprint.NewWithRoot(root.String())
	printChildren(root, t)
	return t.String()
}

func printChildren(n *dom.Node, branch treeprint.Tree) {
	for _, ch := range n.ChildNodes() {
		if ch.ChildCount() == 0 {
			branch.AddNode(ch.String())
			continue
		}
		printChildren(ch, branch.AddBranch(ch.String()))
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	Properties []string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	StyleTmpl  *template.Template
}

var defaultProperties = []string{
	"size",
	"color",
	"background-color",
	"padding",
	"flow",
}

// ToGraphViz outputs a diagram for a node tree in GraphViz (DOT) format.
// For every node, the resolved values of the style properties listed in
// properties are included. If properties is nil, a default selection
// (size, colors, padding and flow) is used.
func ToGraphViz(root *dom.Node, w io.Writer, properties []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Properties: properties}
	if properties == nil {
		gparams.Properties = defaultProperties
	}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*dom.Node]string)
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a node and a testing.T, it will
// create a GraphViz image of the tree under root and write it to a file
// in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

type property struct {
	Key, Value string
}

type styleBox struct {
	Name       string
	Properties []property
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if n.Style == nil {
		return nil
	}
	box := styleBox{Name: name}
	for _, key := range gparams.Properties {
		if v, ok := n.Style.Get(key); ok {
			box.Properties = append(box.Properties, property{key, fmt.Sprint(v)})
		}
	}
	return gparams.StyleTmpl.Execute(w, box)
}

type edge struct {
	N1, N2 node
}

func shortText(n *dom.Node) string {
	s := n.Value.Text()
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = "\"\\\"" + s + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.Value.IsAbsent }}
{{ .Name }}	[ label={{ printf "%q" .N.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
