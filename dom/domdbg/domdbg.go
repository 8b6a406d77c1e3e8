/*
Package domdbg implements helpers to debug a styled tree.

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
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/tree"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the styled tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *tree.Node[*styledtree.StyNode], w io.Writer, styleGroups []string) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*styledtree.StyNode]string, 4096)
	if root != nil {
		nodes(styledtree.Node(root), w, dict, &gparams)
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given the root of a styled tree and a testing.T,
// it will create a Graphiviz image of the tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *tree.Node[*styledtree.StyNode], t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing styled tree image\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

// Label is the node label printed for elements.
func (n node) Label() string {
	label := n.N.HTMLNode().Data
	if cs := n.N.ComputedStyle(); cs != nil && cs.HasVisitedStyle() {
		label += " (visited style)"
	}
	return label
}

func nodes(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for _, ch := range n.Children(true) {
		child := styledtree.Node(ch)
		nodes(child, w, dict, gparams)
		domEdge(n, child, w, dict, gparams)
	}
}

func domNode(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, node{n, name}); err != nil {
		panic(err)
	}
	if !n.IsText() {
		domStyles(n, w, dict, gparams)
	}
}

func domStyles(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	pmap := n.Styles()
	if pmap == nil {
		return
	}
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg != nil {
			if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
				panic(err)
			}
			if prev == nil {
				pgEdge(n, pg, w, dict, gparams)
			} else {
				pgpgEdge(prev, pg, w, dict, gparams)
			}
			prev = pg
		}
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *styledtree.StyNode, n2 *styledtree.StyNode, w io.Writer,
	dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func pgEdge(n *styledtree.StyNode, pg *style.PropertyGroup, w io.Writer,
	dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	//
	if err := gparams.PgedgeTmpl.Execute(w, pgedge{dict[n], pg}); err != nil {
		panic(err)
	}
}

func pgpgEdge(pg1 *style.PropertyGroup, pg2 *style.PropertyGroup, w io.Writer,
	dict map[*styledtree.StyNode]string, gparams *graphParamsType) {
	//
	if err := gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{pg1, pg2}); err != nil {
		panic(err)
	}
}

func shortText(n *styledtree.StyNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Tree dump --------------------------------------------------------

var defaultDumpKeys = []string{"display", "color"}

// Dump prints a styled tree as an indented text tree. Every node shows its
// computed value flags and the values of the given properties (display
// and color if keys is empty). Visited-dependent values respect the link
// state. Pseudo-element styles are shown as extra child nodes.
func Dump(root *tree.Node[*styledtree.StyNode], keys ...string) string {
	if len(keys) == 0 {
		keys = defaultDumpKeys
	}
	p := tp.New()
	if root != nil {
		dump(p, styledtree.Node(root), keys)
	}
	return p.String()
}

func dump(p tp.Tree, n *styledtree.StyNode, keys []string) {
	children := n.Children(true)
	var pseudos []style.PseudoElement
	for _, pe := range []style.PseudoElement{style.PseudoBefore, style.PseudoAfter} {
		if _, ok := n.PseudoStyle(pe); ok {
			pseudos = append(pseudos, pe)
		}
	}
	label := nodeLabel(n, keys)
	if len(children) == 0 && len(pseudos) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, pe := range pseudos {
		cs, _ := n.PseudoStyle(pe)
		branch.AddNode(fmt.Sprintf("::%s %s", pe, styleSummary(cs, keys, false)))
	}
	for _, ch := range children {
		dump(branch, styledtree.Node(ch), keys)
	}
}

func nodeLabel(n *styledtree.StyNode, keys []string) string {
	var name string
	if n.IsText() {
		name = fmt.Sprintf("%q", strings.TrimSpace(n.HTMLNode().Data))
	} else {
		name = "<" + n.HTMLNode().Data + ">"
	}
	cs := n.ComputedStyle()
	if cs == nil {
		return name + " (unstyled)"
	}
	return name + " " + styleSummary(cs, keys, true)
}

func styleSummary(cs *style.ComputedStyle, keys []string, visitedDependent bool) string {
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		v := cs.Get(k)
		if visitedDependent {
			v = cs.VisitedDependentValue(k)
		}
		vals = append(vals, fmt.Sprintf("%s=%s", k, v))
	}
	s := "[" + strings.Join(vals, " ") + "]"
	if f := cs.Flags(); f != 0 {
		s += " {" + f.String() + "}"
	}
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
