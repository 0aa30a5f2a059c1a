package ch

import (
	"os"
	"runtime"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"copsoq/internal/core/version"
)

const defaultClientName = "copsoq"

// BuildClientInfo names this process in system.query_log
// the first product is name (default copsoq) at tag, the binary role
func BuildClientInfo(name, tag string) clickhouse.ClientInfo {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultClientName
	}
	host, _ := os.Hostname()

	type product = struct{ Name, Version string }
	return clickhouse.ClientInfo{Products: []product{
		{Name: name, Version: strings.TrimSpace(tag)},
		{Name: "build", Version: version.Info().Version},
		{Name: "commit", Version: version.ShortCommit()},
		{Name: "go", Version: runtime.Version()},
		{Name: "host", Version: host},
	}}
}
