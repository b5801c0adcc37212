// Package region holds the directory of regional endpoints the router can
// send a visitor to.
//
// A Directory is an ordered, immutable list of Region values built from a
// "NAME#URL,NAME#URL" string or a YAML document:
//
//	regions:
//	  - name: US
//	    url: https://us.example.com
//	  - name: EU
//	    url: https://eu.example.com
//
// Find returns the first region whose name matches exactly. Duplicate names
// are allowed and the first one wins. Entries without a URL are kept so that
// Find reports them, and callers must refuse to redirect to an empty URL.
//
// Loader wraps the construction in a sync.Once so that a directory is parsed
// at most once even when many goroutines ask for it at the same time. Build
// the Loader in main and pass the resulting *Directory to the handlers.
package region
