package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limit for one endpoint. Path supports prefix
// matching when it ends with "/". Limit <= 0 means unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the limiter's settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in limits. LLM-backed and scraping
// endpoints get the tightest budgets; scoring is cheap and generous.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{Path: "/interview", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
			{Path: "/scan", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
			{Path: "/match", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
			{Path: "/auth/token", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// LoadConfig reads limiter settings from the environment, falling back
// to the defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.DefaultLimit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT_WINDOW"); v != "" {
		if window, err := time.ParseDuration(v); err == nil && window > 0 {
			cfg.DefaultWindow = window
		}
	}

	return cfg
}

// match finds the rule for a path and method. Exact matches win over
// prefix matches; unmatched endpoints get the default limit.
func (c *Config) match(path, method string) Rule {
	for _, rule := range c.Rules {
		if rule.Path == path && (rule.Method == "" || rule.Method == method) {
			return rule
		}
	}
	for _, rule := range c.Rules {
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) &&
			(rule.Method == "" || rule.Method == method) {
			return rule
		}
	}
	return Rule{Path: path, Limit: c.DefaultLimit, Window: c.DefaultWindow}
}
