package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the raw README of the awesome-game-security list.
const DefaultSourceURL = "https://raw.githubusercontent.com/gmh5225/awesome-game-security/refs/heads/main/README.md"

// Config holds the application configuration
type Config struct {
	SourceURL       string `mapstructure:"source_url"`
	RefreshInterval int    `mapstructure:"refresh_interval"`
	PageSize        int    `mapstructure:"page_size"`
	DedupKey        string `mapstructure:"dedup_key"`
	PageStrategy    string `mapstructure:"page_strategy"`
	MergeLookahead  bool   `mapstructure:"merge_lookahead"`
	HTTPTimeout     int    `mapstructure:"http_timeout"`
	CacheDir        string `mapstructure:"cache_dir"`
	CacheTTL        int    `mapstructure:"cache_ttl"`
	ColorSection    string `mapstructure:"color_section"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorDesc       string `mapstructure:"color_desc"`
	ColorURL        string `mapstructure:"color_url"`
	ColorTag        string `mapstructure:"color_tag"`
	ColorBorder     string `mapstructure:"color_border"`
	ColorCursor     string `mapstructure:"color_cursor"`
	ColorSelected   string `mapstructure:"color_selected"`
	ColorDim        string `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("source_url", DefaultSourceURL)
	viper.SetDefault("refresh_interval", 300) // Seconds between re-fetches
	viper.SetDefault("page_size", 10)
	viper.SetDefault("dedup_key", "url")      // url or url_desc
	viper.SetDefault("page_strategy", "section") // section or flat
	viper.SetDefault("merge_lookahead", false)
	viper.SetDefault("http_timeout", 30) // Seconds
	viper.SetDefault("cache_dir", defaultCacheDir())
	viper.SetDefault("cache_ttl", 3600) // Seconds
	viper.SetDefault("color_section", "6")   // Cyan
	viper.SetDefault("color_title", "2")     // Green
	viper.SetDefault("color_desc", "7")      // White
	viper.SetDefault("color_url", "4")       // Blue
	viper.SetDefault("color_tag", "3")       // Yellow
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_dim", "241")

	viper.SetConfigName("awesite")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "awesite"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("AWESITE")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetSourceURL returns the URL of the raw source markdown document
func GetSourceURL() string {
	return viper.GetString("source_url")
}

// GetRefreshInterval returns the delay between scheduled re-fetches
func GetRefreshInterval() time.Duration {
	return time.Duration(viper.GetInt("refresh_interval")) * time.Second
}

// GetPageSize returns the number of resources shown per section page
func GetPageSize() int {
	return viper.GetInt("page_size")
}

// GetDedupKey returns the dedup key policy: url or url_desc
func GetDedupKey() string {
	return viper.GetString("dedup_key")
}

// GetPageStrategy returns the pagination strategy: section or flat
func GetPageStrategy() string {
	return viper.GetString("page_strategy")
}

// GetMergeLookahead returns whether a following plain line is folded into
// a resource's description
func GetMergeLookahead() bool {
	return viper.GetBool("merge_lookahead")
}

// GetHTTPTimeout returns the document fetch timeout
func GetHTTPTimeout() time.Duration {
	return time.Duration(viper.GetInt("http_timeout")) * time.Second
}

// GetCacheDir returns the directory for the fetched-document cache
func GetCacheDir() string {
	return expandTilde(viper.GetString("cache_dir"))
}

// GetCacheTTL returns the cache entry lifetime
func GetCacheTTL() time.Duration {
	return time.Duration(viper.GetInt("cache_ttl")) * time.Second
}

// GetColorSection returns the color for section headers
func GetColorSection() string {
	return viper.GetString("color_section")
}

// GetColorTitle returns the color for resource titles
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetColorDesc returns the color for descriptions
func GetColorDesc() string {
	return viper.GetString("color_desc")
}

// GetColorURL returns the color for URLs
func GetColorURL() string {
	return viper.GetString("color_url")
}

// GetColorTag returns the color for tag chips
func GetColorTag() string {
	return viper.GetString("color_tag")
}

// GetColorBorder returns the color for dividers and borders
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorCursor returns the color for the selection cursor
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the background color for the selected row
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorDim returns the color for secondary chrome text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetSourceURL sets the source URL at runtime
func SetSourceURL(url string) {
	viper.Set("source_url", url)
	C.SourceURL = url
}

// SetPageSize sets the page size at runtime
func SetPageSize(n int) {
	viper.Set("page_size", n)
	C.PageSize = n
}

func defaultCacheDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "awesite")
	}
	return filepath.Join(os.TempDir(), "awesite")
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
