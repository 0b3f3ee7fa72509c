package site

import "github.com/freekieb7/pebble/http"

// Page serves one fixed document from the static root. The named page
// routes are thin aliases over the asset resolver, not a separate
// content source; a missing document is a miss, not a fault.
func Page(assets http.AssetResolver, name string) http.Handler {
	return func(req *http.Request) (*http.Response, error) {
		asset, found := assets.Resolve("/" + name)
		if !found {
			return nil, http.ErrNotFound
		}

		return http.File(200, asset), nil
	}
}
