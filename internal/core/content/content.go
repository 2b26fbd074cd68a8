// Package content renders the static pages: embedded Markdown blocks and html templates
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed blocks templates static
var files embed.FS

// View is what every page template receives
type View struct {
	Lang    string
	State   State
	Title   string
	Nav     []NavItem
	T       map[string]string
	Body    template.HTML
	Topics  []RenderedTopic
	Data    any
	Version string
}

// RenderedTopic is a moral issues panel with its body already rendered
type RenderedTopic struct {
	Title string
	Body  template.HTML
}

// Renderer holds parsed templates and pre-rendered blocks; safe for concurrent use
type Renderer struct {
	pages  map[string]*template.Template
	blocks map[string]template.HTML
}

// New parses every template and renders every Markdown block up front
func New() (*Renderer, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	blocks := map[string]template.HTML{}
	err := fs.WalkDir(files, "blocks", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		src, err := files.ReadFile(p)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return fmt.Errorf("content: render %s: %w", p, err)
		}
		lang := path.Base(path.Dir(p))
		name := strings.TrimSuffix(path.Base(p), ".md")
		// goldmark escapes raw html by default, so its output is trusted here
		blocks[lang+"/"+name] = template.HTML(buf.String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	base, err := template.New("layout.html").ParseFS(files, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("content: layout: %w", err)
	}
	pageFiles, err := fs.Glob(files, "templates/page_*.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pf := range pageFiles {
		t, err := template.Must(base.Clone()).ParseFS(files, pf)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", pf, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path.Base(pf), "page_"), ".html")
		pages[name] = t
	}
	return &Renderer{pages: pages, blocks: blocks}, nil
}

// Block returns a rendered Markdown block, falling back to English
func (r *Renderer) Block(name, lang string) template.HTML {
	if b, ok := r.blocks[lang+"/"+name]; ok {
		return b
	}
	return r.blocks["en/"+name]
}

// Topics renders the moral issues panels in display order
func (r *Renderer) Topics(lang string) []RenderedTopic {
	out := make([]RenderedTopic, len(topics))
	for i, t := range topics {
		out[i] = RenderedTopic{Title: pick(t.Title, lang), Body: r.Block(t.Block, lang)}
	}
	return out
}

// Page assembles the common View fields for state in lang
func (r *Renderer) Page(state State, lang string) View {
	return View{
		Lang:  lang,
		State: state,
		Title: LabelOf(state, lang),
		Nav:   Nav(state, lang),
		T:     Strings(lang),
	}
}

// Render executes the named page template
func (r *Renderer) Render(w io.Writer, page string, v View) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("content: no page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.html", v)
}

// Static exposes the embedded stylesheet and assets
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
