package router

import "github.com/gin-gonic/gin"

// Route is one operation descriptor. The route tables in router.go are the
// single source of truth for the HTTP surface; SetupRouter just iterates
// them.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func register(g gin.IRoutes, routes []Route) {
	for _, r := range routes {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
