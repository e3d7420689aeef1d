// Package scenerender converts diagram scene documents into PNG, JPEG,
// PDF and SVG.
//
// # Overview
//
// A scene is a flat list of typed, styled shapes (rectangles, diamonds,
// ellipses, lines, arrows, freehand strokes, text, images, frames) with
// arbitrary rotation and embedded image files. Every output format is
// produced from the same plan, so raster and vector exports of one scene
// look alike.
//
// # Quick Start
//
//	import "github.com/gogpu/scenerender"
//
//	r, err := scenerender.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := scenerender.DefaultRenderOptions()
//	opts.Scale = 2
//	err = r.ExportToFile(ctx, "diagram.png", data, opts)
//
// # Pipeline
//
// An export runs these stages, each in its own package:
//   - scene: decode the document and prepare it (bounds, paint order,
//     frame selection, color transform)
//   - assets: decode the referenced image files concurrently
//   - render: plan the drawing as a backend-neutral recording
//   - recording/backends/*: play the recording into pixels, a PDF page
//     or SVG markup
//
// # Coordinate System
//
// Scene coordinates have their origin at the top-left with Y increasing
// down. Angles are in radians, clockwise on screen. Output pixels map
// scene bounds scaled by RenderOptions.Scale.
package scenerender

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
