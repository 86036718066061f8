// Package links turns user-supplied links into something a page can embed:
// map links become iframe URLs and YouTube links become thumbnails.
//
// Every function is a pure string transform that returns "" when the
// input is not recognized.
package links

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const defaultMapZoom = 15

var (
	googleCoordsPattern = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)(?:,(\d+(?:\.\d+)?)z)?`)
	yandexOrgPattern    = regexp.MustCompile(`^/maps/org/[^/]+/(\d+)`)
)

// MapEmbedURL rewrites a Google Maps or Yandex Maps link into an
// embeddable map widget URL.
func MapEmbedURL(link string) string {
	u, ok := parseHTTPURL(link)
	if !ok {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	switch {
	case isGoogleMapsHost(host, u.Path):
		return googleEmbed(u)
	case isYandexHost(host):
		return yandexEmbed(u, host)
	}
	return ""
}

func parseHTTPURL(link string) (*url.URL, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, false
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}

func isGoogleMapsHost(host, path string) bool {
	if strings.HasPrefix(host, "maps.google.") {
		return true
	}
	return strings.HasPrefix(host, "google.") && strings.HasPrefix(path, "/maps")
}

func googleEmbed(u *url.URL) string {
	query := u.Query()

	if strings.HasPrefix(u.Path, "/maps/embed") || query.Get("output") == "embed" {
		return u.String()
	}

	if m := googleCoordsPattern.FindStringSubmatch(u.Path); m != nil {
		zoom := defaultMapZoom
		if m[3] != "" {
			if z, err := strconv.ParseFloat(m[3], 64); err == nil {
				zoom = int(math.Round(z))
			}
		}
		return fmt.Sprintf("https://maps.google.com/maps?q=%s,%s&z=%d&output=embed", m[1], m[2], zoom)
	}

	place := query.Get("q")
	if place == "" {
		place = query.Get("query")
	}
	if place == "" {
		place = googlePlaceName(u.Path)
	}
	if place == "" {
		return ""
	}
	return "https://maps.google.com/maps?q=" + url.QueryEscape(place) + "&output=embed"
}

// googlePlaceName extracts <name> from /maps/place/<name>/...
func googlePlaceName(path string) string {
	rest, ok := strings.CutPrefix(path, "/maps/place/")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rest, "/")
	name = strings.ReplaceAll(name, "+", " ")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return strings.TrimSpace(name)
}

func isYandexHost(host string) bool {
	host = strings.TrimPrefix(host, "maps.")
	return strings.HasPrefix(host, "yandex.")
}

func yandexEmbed(u *url.URL, host string) string {
	if strings.HasPrefix(u.Path, "/map-widget/") {
		return u.String()
	}

	tld := strings.TrimPrefix(strings.TrimPrefix(host, "maps."), "yandex.")
	widget := "https://yandex." + tld + "/map-widget/v1/"
	query := u.Query()

	if ll := query.Get("ll"); ll != "" {
		params := url.Values{}
		params.Set("ll", ll)
		if z := query.Get("z"); z != "" {
			params.Set("z", z)
		} else {
			params.Set("z", strconv.Itoa(defaultMapZoom))
		}
		if pt := query.Get("pt"); pt != "" {
			params.Set("pt", pt)
		}
		return widget + "?" + params.Encode()
	}

	if m := yandexOrgPattern.FindStringSubmatch(u.Path); m != nil {
		return widget + "?oid=" + m[1]
	}

	return ""
}
