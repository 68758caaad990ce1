package binder

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// Query binds URL query parameters into the group's fields. Same decode path
// as Form without the content-type gate: unknown parameters are ignored and
// fields absent from the query keep their current value.
//
//	prefill := signup.NewForm()
//	if err := binder.Query(r, prefill.Fields); err != nil {
//		// 400
//	}
func Query(r *http.Request, g *formkit.Group) error {
	if err := g.Decode(r.URL.Query()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return nil
}
