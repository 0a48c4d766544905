// Package parser implements the per-sport payload parsers that turn raw
// provider responses into normalized records. Parsers are pure: they never
// perform I/O and never touch the cache, so each one is testable against a
// fixed payload fixture.
//
// A parser must tolerate missing optional sub-fields (the provider schemas
// are not fully stable) by substituting defaults, but it must fail when a
// required top-level identifier is absent, since downstream consumers key
// on those.
package parser

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// Parser normalizes raw provider payloads for one sport. The registry maps
// each sport to its Parser; adding a sport means adding one implementation
// here plus one registry entry.
type Parser interface {
	// Parse converts a raw payload of the given wire format into the
	// normalized record variant for the endpoint kind.
	Parse(kind sports.Kind, format string, payload []byte) (sports.Record, error)
}

// decode unmarshals a payload in the configured wire format into v.
func decode(format string, payload []byte, v interface{}) error {
	var err error
	switch format {
	case sports.FormatXML:
		err = xml.Unmarshal(payload, v)
	default:
		err = json.Unmarshal(payload, v)
	}
	if err != nil {
		return errortypes.ParseError(err, "failed to decode provider payload").
			WithField("format", format)
	}
	return nil
}

// missingID reports a violated required-identifier contract.
func missingID(field string) error {
	return errortypes.ParseError(
		fmt.Errorf("required identifier %q is missing from payload", field),
		"payload violates required-field contract")
}

// unknownKind reports an endpoint kind the parser has no transform for.
// The registry guards kinds before parsing, so reaching this is a bug.
func unknownKind(sport sports.ID, kind sports.Kind) error {
	return errortypes.InternalError(
		fmt.Errorf("no %s parser for endpoint kind %q", sport, kind),
		"parser dispatch failed")
}
