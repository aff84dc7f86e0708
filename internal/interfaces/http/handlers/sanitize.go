package handlers

import "github.com/microcosm-cc/bluemonday"

// Free-text fields end up rendered in dashboards, so markup is stripped on
// the way in rather than trusted on the way out.
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return textPolicy.Sanitize(s)
}
