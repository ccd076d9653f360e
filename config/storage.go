package config

import "os"

// MediaRoot is the directory uploaded files are written under. The paths
// stored on recipes stay relative to it.
var MediaRoot string

func init() {
	MediaRoot = os.Getenv("MEDIA_ROOT")
	if MediaRoot == "" {
		MediaRoot = "media"
	}
}
