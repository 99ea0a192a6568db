package badge

// ManufacturingVideoID is the embedded manufacturing-process video.
const ManufacturingVideoID = "5Ou8olYntuc"

// iframe permissions granted to the embedded player.
const videoAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

// Video describes the embedded player shown inside the open overlay.
type Video struct {
	ID    string
	Title string
}

// EmbedURL returns the player URL. An empty ID falls back to the manufacturing video.
func (v Video) EmbedURL() string {
	id := v.ID
	if id == "" {
		id = ManufacturingVideoID
	}
	return "https://www.youtube.com/embed/" + id
}

// Allow returns the iframe allow attribute.
func (v Video) Allow() string { return videoAllow }
