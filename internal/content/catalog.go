package content

// Chain labels the blockchain family a page targets.
type Chain string

const (
	// ChainAny marks pages that apply to every supported chain.
	ChainAny Chain = ""
	// ChainEVM covers EVM-compatible networks.
	ChainEVM Chain = "evm"
	// ChainSolana covers Solana.
	ChainSolana Chain = "solana"
	// ChainTON covers The Open Network.
	ChainTON Chain = "ton"
)

// Page describes one documentation page entry.
type Page struct {
	// Slug is the URL-safe page identifier.
	Slug string
	// Title is the page heading shown in listings and the layout title.
	Title string
	// Chain is the blockchain family the page targets, if any.
	Chain Chain
	// Summary is the one-line description shown on the landing page.
	Summary string

	file string
}

var catalog = []Page{
	{
		Slug:    "how-price-feeds-work",
		Title:   "How Pyth Price Feeds Work",
		Chain:   ChainAny,
		Summary: "The pull-oracle model: publishers, aggregation, and on-demand updates.",
		file:    "pages/how-price-feeds-work.mdx",
	},
	{
		Slug:    "fetch-price-updates",
		Title:   "Fetch Price Updates",
		Chain:   ChainAny,
		Summary: "Request signed price updates from the Hermes HTTP API.",
		file:    "pages/fetch-price-updates.mdx",
	},
	{
		Slug:    "evm-price-feeds",
		Title:   "Use Price Feeds on EVM Chains",
		Chain:   ChainEVM,
		Summary: "Consume Pyth prices from Solidity contracts via the IPyth interface.",
		file:    "pages/evm-price-feeds.mdx",
	},
	{
		Slug:    "solana-price-feeds",
		Title:   "Use Price Feeds on Solana",
		Chain:   ChainSolana,
		Summary: "Post price updates and read them from Anchor programs.",
		file:    "pages/solana-price-feeds.mdx",
	},
	{
		Slug:    "ton-price-feeds",
		Title:   "Use Price Feeds on TON",
		Chain:   ChainTON,
		Summary: "Update and read prices through the Pyth receiver contract on TON.",
		file:    "pages/ton-price-feeds.mdx",
	},
}

// Pages returns a copy of the documentation page catalog.
func Pages() []Page {
	result := make([]Page, len(catalog))
	copy(result, catalog)
	return result
}

// BySlug looks up a cataloged page.
func BySlug(slug string) (Page, bool) {
	for _, page := range catalog {
		if page.Slug == slug {
			return page, true
		}
	}
	return Page{}, false
}
