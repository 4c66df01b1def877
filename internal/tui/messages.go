package tui

import (
	"github.com/MKhiriev/go-movie-browser/models"
)

type verifyDoneMsg struct {
	username string
	ok       bool
	err      error
}

type pageLoadedMsg struct {
	page models.MediaPage
	err  error
}

type detailLoadedMsg struct {
	details    models.MediaDetails
	trailer    models.Video
	hasTrailer bool
	err        error
}

type posterSavedMsg struct {
	file string
	err  error
}
