package provider

import (
	"fmt"
	"strings"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// Access levels accepted by the provider.
const (
	AccessLevelTrial      = "trial"
	AccessLevelProduction = "production"
)

// Config is the process-wide provider API configuration: response language,
// access tier and wire format. A Config value is immutable once published;
// updates replace the whole snapshot (see Client.UpdateConfig), so readers
// never observe a partially-updated configuration.
type Config struct {
	Language    string `json:"language"`
	AccessLevel string `json:"access_level"`
	Format      string `json:"format"`
}

// DefaultConfig returns the configuration used until update_api_config is
// called.
func DefaultConfig() Config {
	return Config{
		Language:    "en",
		AccessLevel: AccessLevelTrial,
		Format:      sports.FormatJSON,
	}
}

// NormalizeConfig validates candidate settings against the current snapshot
// and returns the replacement. Empty arguments keep the current value;
// accepted values are case-insensitive and normalized to canonical lower
// case. Any invalid field rejects the whole update.
func NormalizeConfig(current Config, language, accessLevel, format string) (Config, error) {
	next := current

	if language != "" {
		next.Language = strings.ToLower(strings.TrimSpace(language))
	}

	if accessLevel != "" {
		v := strings.ToLower(strings.TrimSpace(accessLevel))
		if v != AccessLevelTrial && v != AccessLevelProduction {
			return current, errortypes.ValidationError(
				fmt.Errorf("access_level must be %q or %q, got %q", AccessLevelTrial, AccessLevelProduction, accessLevel),
				"invalid api config").
				WithField("field", "access_level")
		}
		next.AccessLevel = v
	}

	if format != "" {
		v := strings.ToLower(strings.TrimSpace(format))
		if v != sports.FormatJSON && v != sports.FormatXML {
			return current, errortypes.ValidationError(
				fmt.Errorf("format must be %q or %q, got %q", sports.FormatJSON, sports.FormatXML, format),
				"invalid api config").
				WithField("field", "format")
		}
		next.Format = v
	}

	return next, nil
}
