// Package templates defines the site's page components.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/oracledocs/oracledocs.dev/internal/content"
	"github.com/oracledocs/oracledocs.dev/internal/platform/branding"
	"github.com/oracledocs/oracledocs.dev/internal/platform/icons"
)

// ComposePageTitle appends the brand suffix unless the title already carries it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// Layout wraps child content in the shared site chrome.
func Layout(title, description, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		var head strings.Builder
		head.WriteString(`<!doctype html><html lang="`)
		head.WriteString(templ.EscapeString(lang))
		head.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		head.WriteString(templ.EscapeString(ComposePageTitle(title)))
		head.WriteString(`</title>`)
		if strings.TrimSpace(description) != "" {
			head.WriteString(`<meta name="description" content="`)
			head.WriteString(templ.EscapeString(description))
			head.WriteString(`">`)
		}
		head.WriteString(`<link rel="stylesheet" href="/static/site.css"></head><body><header class="site-header"><a class="brand" href="/">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if err := icons.Relay().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<span>`+templ.EscapeString(branding.AppName)+`</span></a></header><main class="site-main">`); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><footer class="site-footer"><p>Integration guides for the Pyth price-oracle network.</p></footer></body></html>`)
		return err
	})
}

// LandingPage lists the documentation catalog.
func LandingPage(pages []content.Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>Price Feed Integration Guides</h1><ul class="page-list">`)
		for _, page := range pages {
			b.WriteString(`<li class="page-card"><a href="/docs/`)
			b.WriteString(templ.EscapeString(page.Slug))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(page.Title))
			b.WriteString(`</a>`)
			if label := ChainLabel(page.Chain); label != "" {
				b.WriteString(`<span class="chain-badge">`)
				b.WriteString(templ.EscapeString(label))
				b.WriteString(`</span>`)
			}
			b.WriteString(`<p>`)
			b.WriteString(templ.EscapeString(page.Summary))
			b.WriteString(`</p></li>`)
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DocPage renders one documentation page shell with its raw MDX source.
func DocPage(page content.Page, source string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="doc-page"><h1>`)
		b.WriteString(templ.EscapeString(page.Title))
		b.WriteString(`</h1>`)
		if label := ChainLabel(page.Chain); label != "" {
			b.WriteString(`<span class="chain-badge">`)
			b.WriteString(templ.EscapeString(label))
			b.WriteString(`</span>`)
		}
		b.WriteString(`<p class="doc-summary">`)
		b.WriteString(templ.EscapeString(page.Summary))
		b.WriteString(`</p><p><a href="/content/`)
		b.WriteString(templ.EscapeString(page.Slug))
		b.WriteString(`.mdx">Raw source</a></p><pre class="doc-source">`)
		b.WriteString(templ.EscapeString(source))
		b.WriteString(`</pre>`)
		b.WriteString(`<form class="feedback" method="post" action="/docs/`)
		b.WriteString(templ.EscapeString(page.Slug))
		b.WriteString(`/feedback"><span>Was this page helpful?</span>`)
		b.WriteString(`<button name="helpful" value="yes">Yes</button>`)
		b.WriteString(`<button name="helpful" value="no">No</button></form></article>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NotFoundPage renders the missing-page state.
func NotFoundPage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Page not found</h1><p>The page you requested is not in the documentation catalog.</p><p><a href="/">Back to the guides</a></p>`)
		return err
	})
}

// ChainLabel maps a chain to its display label.
func ChainLabel(chain content.Chain) string {
	switch chain {
	case content.ChainEVM:
		return "EVM"
	case content.ChainSolana:
		return "Solana"
	case content.ChainTON:
		return "TON"
	default:
		return ""
	}
}
