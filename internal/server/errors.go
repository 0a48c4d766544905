package server

import (
	"github.com/reeeeemo/mcp-sports/internal/errortypes"
)

// Error kind strings surfaced to MCP clients in the error_kind response
// field. These mirror the internal error taxonomy so a client can
// distinguish a bad request from a provider outage.
const (
	KindConfig           = "config"
	KindValidation       = "validation"
	KindUnsupportedSport = "unsupported_sport"
	KindUpstream         = "upstream"
	KindNetwork          = "network"
	KindParse            = "parse"
	KindInternal         = "internal"
)

// errKind classifies an error for the error_kind response field.
func errKind(err error) string {
	return string(errortypes.KindOf(err))
}
