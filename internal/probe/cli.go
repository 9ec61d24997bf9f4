package probe

import "io"

// ShowHelp prints usage information for the probe tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Edgegate Probe
==============

Sends concurrent requests to a running edge router and verifies each
response against the router's public contract.

Usage:
  edgeprobe [options]

Options:
  -url string
        Base URL of the router (default "http://localhost:8787")
  -key string
        Shared secret for gated checks (default $API_KEY; empty skips them)
  -rounds int
        Times each check is executed (default 10)
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        HTTP request timeout (default 5s)
  -verbose
        Log every failed check
  -help
        Show this help message

Examples:
  # Probe a local router without gated checks
  edgeprobe

  # Probe a deployment including the gated routes
  edgeprobe -url https://edge.example.com -key "$API_KEY" -rounds 100
`)
}
