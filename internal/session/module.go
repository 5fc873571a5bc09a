package session

import "go.uber.org/fx"

// Module provides the in-memory session store to the fx container.
var Module = fx.Provide(NewStore)
