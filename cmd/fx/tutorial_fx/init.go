package tutorial_fx

import (
	"go.uber.org/fx"
	mem "tripdesk/pkg/memcache"
)

var Module = fx.Provide(
	provideVisitedPages)

func provideVisitedPages() mem.VisitedPageStore {
	return mem.NewVisitedPages()
}
