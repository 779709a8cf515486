// Package defaults embeds the built-in FundRaise Pro token table.
package defaults

import _ "embed"

// SourceName identifies the embedded table in logs and generated headers.
const SourceName = "embedded:fundraise.yaml"

//go:embed fundraise.yaml
var fundraise []byte

// Tokens returns a copy of the embedded token document.
func Tokens() []byte {
	return append([]byte(nil), fundraise...)
}
