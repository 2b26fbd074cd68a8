package module

import "scotuspredict/internal/services/predict/domain"

// Ports holds what the predict module exposes to other modules
type Ports struct {
	Service domain.ServicePort
}

// Imports holds what the predict module consumes; pass it with modkit.WithPorts
type Imports struct {
	Codebook domain.CodebookPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
