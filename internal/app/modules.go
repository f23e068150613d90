package app

import (
	"github.com/simontudge/sweepy/internal/registry"
	"github.com/simontudge/sweepy/models/noisygauss"
	"github.com/simontudge/sweepy/models/oscillator"
	"github.com/simontudge/sweepy/models/polynomial"
)

// coreModules lists the built-in models registered when the caller does
// not inject its own set (tests do).
var coreModules = []registry.Module{
	&polynomial.Module{},
	&noisygauss.Module{},
	&oscillator.Module{},
}
