/*
Package tegaki turns GlyphWiki KAGE glyph descriptors into fixed length feature vectors,
which can be compared against the strokes of a hand-drawn character.

Every glyph is expanded into polylines on a 200x200 canvas, resolving the referenced
components recursively. Each stroke is then reduced to its start, middle and end point,
and the resulting chords are soft-binned into a vector of ColSize values.

The package provides a command line interface which builds the feature index of a whole dump.
To check the supported commands type:

	$ tegaki --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"log"

		"github.com/esimov/tegaki"
	)

	func main() {
		dump, err := tegaki.OpenDump("dump_newest_only.txt.gz")
		if err != nil {
			log.Fatal(err)
		}

		feature, ok := tegaki.EncodeGlyph(dump, "u6f22")
		if !ok {
			log.Fatal("glyph not found")
		}
		fmt.Println(feature)
	}
*/
package tegaki
