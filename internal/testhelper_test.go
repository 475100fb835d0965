package internal_test

import (
	"github.com/dmitrymomot/orgwizard/internal"
)

// routes adapts a function to internal.Handler.
type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }
