package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Admonition blocks look like:
//
//	!!! warning "Read this first"
//	    Indented body, any Markdown.
//
// The first word is the type and becomes a CSS class, extra words are extra
// classes. Without a quoted title the capitalized type is used; an empty
// quoted title ("") suppresses the title paragraph.

// KindAdmonition is the ast.NodeKind of admonition blocks.
var KindAdmonition = ast.NewNodeKind("Admonition")

// admonitionIndent is the body indentation width.
const admonitionIndent = 4

// admonitionEndKey holds the line number where an admonition body ended.
var admonitionEndKey = parser.NewContextKey()

var admonitionStart = regexp.MustCompile(`^!!! ?([\w\-]+(?: +[\w\-]+)*)(?: +"(.*?)")? *$`)

// AdmonitionNode is a block holding the admonition body as children.
type AdmonitionNode struct {
	ast.BaseBlock
	Classes []string
	Title   string
}

// Kind implements ast.Node.
func (n *AdmonitionNode) Kind() ast.NodeKind {
	return KindAdmonition
}

// Dump implements ast.Node.
func (n *AdmonitionNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Classes": strings.Join(n.Classes, " "),
		"Title":   n.Title,
	}, nil)
}

// parseAdmonitionStart parses the opening line. ok is false when the line
// is not an admonition start.
func parseAdmonitionStart(line []byte) (classes []string, title string, ok bool) {
	m := admonitionStart.FindSubmatch(util.TrimRightSpace(util.TrimLeftSpace(line)))
	if m == nil {
		return nil, "", false
	}
	classes = strings.Fields(strings.ToLower(string(m[1])))
	if m[2] == nil {
		return classes, capitalize(classes[0]), true
	}
	return classes, string(m[2]), true
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

type admonitionParser struct{}

func (p *admonitionParser) Trigger() []byte {
	return []byte{'!'}
}

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	classes, title, ok := parseAdmonitionStart(line)
	if !ok {
		return nil, parser.NoChildren
	}

	// Consume the opening line up to its newline.
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	reader.Advance(n)

	return &AdmonitionNode{Classes: classes, Title: title}, parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		if len(line) > 0 {
			reader.Advance(len(line) - 1)
		}
		return parser.Continue | parser.HasChildren
	}

	pos, padding := util.IndentPosition(line, reader.LineOffset(), admonitionIndent)
	if pos < 0 {
		lineNum, _ := reader.Position()
		pc.Set(admonitionEndKey, lineNum)
		return parser.Close
	}
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *admonitionParser) CanInterruptParagraph() bool {
	return true
}

func (p *admonitionParser) CanAcceptIndentedLine() bool {
	return false
}

// admonitionEndParser starts a new paragraph on the line that ended an
// admonition body. Without it goldmark would append that line to the last
// paragraph of the body as a lazy continuation.
type admonitionEndParser struct{}

func (p *admonitionEndParser) Trigger() []byte {
	return nil
}

func (p *admonitionEndParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	end, ok := pc.Get(admonitionEndKey).(int)
	lineNum, _ := reader.Position()
	if !ok || end != lineNum {
		return nil, parser.NoChildren
	}
	pc.Set(admonitionEndKey, nil)
	return parser.NewParagraphParser().Open(parent, reader, pc)
}

func (p *admonitionEndParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.NewParagraphParser().Continue(node, reader, pc)
}

func (p *admonitionEndParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	parser.NewParagraphParser().Close(node, reader, pc)
}

func (p *admonitionEndParser) CanInterruptParagraph() bool {
	return true
}

func (p *admonitionEndParser) CanAcceptIndentedLine() bool {
	return false
}

type admonitionRenderer struct{}

func (r *admonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.render)
}

func (r *admonitionRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}

	n := node.(*AdmonitionNode)
	_, _ = w.WriteString(`<div class="admonition`)
	for _, c := range n.Classes {
		_ = w.WriteByte(' ')
		_, _ = w.Write(util.EscapeHTML([]byte(c)))
	}
	_, _ = w.WriteString("\">\n")
	if n.Title != "" {
		_, _ = w.WriteString(`<p class="admonition-title">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

type admonitionExtension struct{}

// Admonition is a goldmark extension for "!!! type" blocks.
var Admonition goldmark.Extender = &admonitionExtension{}

func (e *admonitionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&admonitionParser{}, 100),
		util.Prioritized(&admonitionEndParser{}, 999),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&admonitionRenderer{}, 500),
	))
}

var (
	_ parser.BlockParser    = (*admonitionParser)(nil)
	_ parser.BlockParser    = (*admonitionEndParser)(nil)
	_ renderer.NodeRenderer = (*admonitionRenderer)(nil)
)
