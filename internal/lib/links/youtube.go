package links

import (
	"net/url"
	"regexp"
	"strings"
)

var youTubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// YouTubeID extracts the video id from watch, youtu.be, embed, shorts,
// live and /v/ links. Scheme-less links are accepted.
func YouTubeID(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "m.", "music."} {
		host = strings.TrimPrefix(host, prefix)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
			break
		}
		if len(segments) >= 2 {
			switch segments[0] {
			case "embed", "shorts", "live", "v":
				id = segments[1]
			}
		}
	}

	if !youTubeIDPattern.MatchString(id) {
		return ""
	}
	return id
}

// YouTubeThumbnail returns the high quality thumbnail of a YouTube link.
func YouTubeThumbnail(link string) string {
	id := YouTubeID(link)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// YouTubeEmbedURL returns the iframe URL of a YouTube link.
func YouTubeEmbedURL(link string) string {
	id := YouTubeID(link)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
