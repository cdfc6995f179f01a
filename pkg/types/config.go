package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every outbound request.
	// The archive serves degraded markup to default Go client agents, so a
	// browser string is used.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CrawlConfig holds settings for the metadata collection stage.
type CrawlConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog origin (e.g. "https://archive.ics.uci.edu").
	// Relative links found on pages are resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// PageSize is the number of datasets requested per listing page (default 20).
	// A page yielding fewer links than this signals the end of the listing.
	PageSize int `json:"page_size" yaml:"page_size"`

	// PageDelay is the polite delay between listing page fetches (default 300ms).
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay"`

	// DetailDelay is the polite delay between detail page fetches (default 300ms).
	DetailDelay time.Duration `json:"detail_delay" yaml:"detail_delay"`

	// OutputCSV is the path the metadata table is written to.
	OutputCSV string `json:"output_csv" yaml:"output_csv"`
}

// DownloadConfig holds settings for the dataset download stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog origin used to absolutize relative download links.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DownloadDir is the directory downloaded archives are written to.
	DownloadDir string `json:"download_dir" yaml:"download_dir"`

	// DownloadDelay is the delay after each processed dataset (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// SkipDelay is the shorter delay used when a file already exists on
	// disk and no network transfer happens (default 100ms).
	SkipDelay time.Duration `json:"skip_delay" yaml:"skip_delay"`
}

// CatalogConfig holds settings for the catalog index stage.
type CatalogConfig struct {
	// DataDir is the base directory for harvester data (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
