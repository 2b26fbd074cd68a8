package net

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Languages the UI ships text for; the first entry is the fallback
var Supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(Supported)

// Negotiate picks a supported language from ?lang= first, then Accept-Language
func Negotiate(r *http.Request) language.Tag {
	if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
		if tag, err := language.Parse(q); err == nil {
			return match(tag)
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	return match(tags...)
}

// match maps a preference list onto Supported, dropping regional variants (es-MX -> es)
func match(prefs ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Code returns the two-letter base ("en", "es") used as a content key
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
