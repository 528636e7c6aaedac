// Package cli implements the command-line interface for crxcheck.
//
// # Overview
//
// crxcheck runs during packaging of the AntiPrint browser extension. It
// fails the build early when the extension manifest or the parent build
// descriptor records a different version than the one being built.
//
// # Commands
//
// check-version - Verify recorded versions:
//
//	crxcheck check-version <required_version> <crx_manifest> [efw_pom_file]
//
// The manifest "version" must equal the required version with -SNAPSHOT
// removed once. The descriptor version must match
// <major>.<minor>.<patch>x<suffix> with suffix equal to the required version.
//
// fixtures-csv - Tabulate navigator fixtures:
//
//	crxcheck fixtures-csv testdata/*.json
//
// # Exit Status
//
//	0  every check passed
//	1  usage, I/O, parse or missing version errors
//	2  version or pattern mismatch
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL, default warn)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Reports
//
// check-version can also write a report of every executed check:
//
//	crxcheck check-version --output report.json 1.2.3 manifest.json pom.xml
//	crxcheck check-version -o - -t table 1.2.3 manifest.json
//
// and a Prometheus textfile for node exporter collection:
//
//	crxcheck check-version --metrics-file /var/lib/node_exporter/crxcheck.prom 1.2.3 manifest.json
package cli
