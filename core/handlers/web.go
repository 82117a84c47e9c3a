package handlers

import (
	"net/url"
	"strings"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// URL opens an address in the browser.
func URL(s *session.Session, args []lang.Value) (lang.Value, error) {
	address, err := oneString("url", args)
	if err != nil {
		return lang.Value{}, err
	}
	if !strings.Contains(address, "://") {
		address = "https://" + address
	}
	if err := s.Launcher().OpenURL(address); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

// Google opens a web search for the query, or the homepage for a bare
// google.
func Google(s *session.Session, args []lang.Value) (lang.Value, error) {
	query, hasQuery, err := optionalString("google", args)
	if err != nil {
		return lang.Value{}, err
	}
	address := "https://www.google.com"
	if hasQuery {
		address += "/search?q=" + url.QueryEscape(query)
	}
	if err := s.Launcher().OpenURL(address); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

func init() {
	register("url", URL)
	register("google", Google)
}
