package app

import (
	"fmt"
	"sort"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// invariantRegistry collects module invariants so the node can assert them
// after genesis and on demand.
type invariantRegistry struct {
	routes map[string]sdk.Invariant
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

func newInvariantRegistry() *invariantRegistry {
	return &invariantRegistry{routes: make(map[string]sdk.Invariant)}
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes[moduleName+"/"+route] = invar
}

// AssertInvariants checks every registered invariant against the latest
// committed state and reports all broken ones.
func (app *App) AssertInvariants() error {
	var broken []string
	err := app.Query(func(ctx sdk.Context) error {
		routes := make([]string, 0, len(app.invariants.routes))
		for route := range app.invariants.routes {
			routes = append(routes, route)
		}
		sort.Strings(routes)

		for _, route := range routes {
			if msg, isBroken := app.invariants.routes[route](ctx); isBroken {
				broken = append(broken, strings.TrimSpace(msg))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(broken) > 0 {
		return fmt.Errorf("broken invariants:\n%s", strings.Join(broken, "\n"))
	}
	return nil
}
