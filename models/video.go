package models

// Video is a single promotional video attached to a movie or TV show.
type Video struct {
	// ID is the TMDb video identifier.
	ID string `json:"id"`

	// Key is the provider-side video key. For YouTube-hosted videos it is
	// the watch id.
	Key string `json:"key"`

	// Name is the display title of the video.
	Name string `json:"name"`

	// Site names the hosting provider, e.g. "YouTube" or "Vimeo".
	Site string `json:"site"`

	// Type classifies the video: "Trailer", "Teaser", "Clip" and so on.
	Type string `json:"type"`

	// Official reports whether the video was published by the studio.
	Official bool `json:"official"`
}

// VideoList is the wire shape of the videos endpoints: the owning item id
// plus its videos.
type VideoList struct {
	// ID is the TMDb id of the movie or TV show the videos belong to.
	ID int64 `json:"id"`

	// Results holds the attached videos.
	Results []Video `json:"results"`
}

// WatchURL builds the public YouTube watch URL for the video, or "" when
// the video has no key.
func (v Video) WatchURL() string {
	if v.Key == "" {
		return ""
	}

	return "https://www.youtube.com/watch?v=" + v.Key
}
