// Package assets holds files compiled into the binary.
package assets

import _ "embed"

// FallbackPage is served when neither a template nor a static index exists.
// It is self-contained and reloads itself every few seconds until real
// content is deployed.
//
//go:embed fallback.html
var FallbackPage []byte
