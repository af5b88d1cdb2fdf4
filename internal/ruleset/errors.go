package ruleset

import "errors"

// ErrInvalidRuleFile indicates a YAML rule file could not be decoded.
var ErrInvalidRuleFile = errors.New("invalid rule file")
