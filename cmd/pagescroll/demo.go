package main

import (
	"pagescroll/internal/domain"
)

// demoDocuments fills the scroller when no documents were given
func demoDocuments() []domain.Document {
	return []domain.Document{
		domain.NewDocument("Welcome", `This is pagescroll, a horizontally paged viewer.

Drag a page sideways with the mouse. Let go after a short drag and it
snaps back; drag further and it settles on the neighbouring page.`, ""),
		domain.NewDocument("Keys", `←/h and →/l slide to the previous or next page.
home/g and end/G jump to the first or last page.
1-9 jump straight to a page.
enter opens the page in a pager.
n adds a note after the current page, x removes the current page.
? shows all keys, q quits.`, ""),
		domain.NewDocument("Loading documents", `Start pagescroll with a directory or files:

    pagescroll -d ~/notes
    pagescroll README.md CHANGELOG.md

Text and markdown files become pages, ordered by path.`, ""),
		domain.NewDocument("Configuration", `Settings live in config.toml under your user config directory.
Use -config to point at another file.

[scroll] sets page size, offset, thresholds, slide duration and easing.
[ui] toggles the page indicator and help, and sets the frame rate.`, ""),
	}
}
