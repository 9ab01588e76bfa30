/*
Package rox implements the ROX (Rhythm Open Exchange) pivot format for VSRG
(Vertical Scrolling Rhythm Game) charts.

ROX normalizes notes, timing, and metadata from several textual chart formats
into a single Chart value that round-trips losslessly through a compact binary
container, and back out to any of the supported textual formats.

This package defines the Chart data model plus the Decoder/Encoder
interfaces every format translator implements. Translators themselves
(osu!, StepMania, Quaver, FNF, and the debug JSON/YAML flavors) live under
internal/codec/formats, the binary container under internal/codec/rox, and
format auto-detection under internal/codec/auto; all three are consumed by the rox CLI (cmd/rox), not
re-exported here, since a root-level re-export would import back into this
package.

Usage:

	c := rox.NewChart(4)
	c.AddTimingPoint(rox.BPMPoint(0, 180))
	c.AddNote(rox.TapNote(1_000_000, 0))

	if err := c.Validate(); err != nil {
	    log.Fatal(err)
	}

	// A translator implements Decoder/Encoder and works directly on bytes:
	var enc rox.Encoder = someTranslator{}
	data, err := enc.Encode(c)
*/
package rox
