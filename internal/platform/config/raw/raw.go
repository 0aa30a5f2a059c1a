// Package raw reads bootstrap settings without logging, so the logger
// itself can be configured from the environment
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefix over the process environment
type Conf struct{ prefix string }

// New is the unprefixed root
func New() Conf { return Conf{} }

// Prefix appends p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def
func (c Conf) Get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + k)); v != "" {
		return v
	}
	return def
}

// GetBool returns def unless the value parses as a bool
func (c Conf) GetBool(k string, def bool) bool {
	if b, err := strconv.ParseBool(c.Get(k, "")); err == nil {
		return b
	}
	return def
}
