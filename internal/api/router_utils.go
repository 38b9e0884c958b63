package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/gorilla/mux"
)

// PrintRoutes walks through all routes registered in the router and writes
// them as a tab-separated table
func PrintRoutes(w io.Writer, r *mux.Router) error {
	fmt.Fprintln(w, "METHOD\tPATH")

	return r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}

		methods, err := route.GetMethods()
		if err != nil {
			// prefix-only routes such as subrouters carry no handler of their own
			if route.GetHandler() == nil {
				return nil
			}
			methods = []string{"ANY"}
		}

		_, err = fmt.Fprintf(w, "%s\t%s\n", strings.Join(methods, ","), pathTemplate)
		return err
	})
}
