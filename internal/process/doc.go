// Package process terminates browser process trees left behind by a
// launcher, so no Chrome renderer survives a finished export.
package process
