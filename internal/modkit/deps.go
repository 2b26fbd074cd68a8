// Package modkit provides module wiring and core deps
package modkit

import (
	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/modkit/repokit"
	"scotuspredict/internal/platform/config"
	"scotuspredict/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger

	// Cfg is unprefixed; each module adds its own CORE_<NAME>_ prefix
	Cfg config.Conf

	// Service is the binary name reported by meta endpoints and page footers
	Service string

	// PG is nil when no codebook store is configured
	PG repokit.Queryer

	// Model is the shared classifier handle; modules never load it themselves
	Model *artifact.Handle
}

// HasPG reports whether an sql backend is wired
func (d Deps) HasPG() bool { return d.PG != nil }
