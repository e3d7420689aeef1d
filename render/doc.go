// Package render turns a prepared scene into a backend-neutral recording.
//
// The planner walks the elements in paint order and emits one set of
// stateless draw commands per element: every path is in element-local
// coordinates and carries the matrix that places it in the output,
//
//	Scale(s) · Translate(x-minX, y-minY) · RotateAbout(angle, w/2, h/2)
//
// so backends never keep a transform stack. Composition is expressed with
// groups: an element inside a frame is wrapped in a group clipped to the
// frame, and an arrow that carries labels is wrapped in a group whose mask
// cuts holes where the labels sit. Every backend realizes the mask, so the
// cut-out looks the same whatever the background.
//
// # Usage
//
//	ps, _ := scene.Prepare(s, scene.DefaultPrepareOptions())
//	set, _ := assets.Prefetch(ctx, s.Files, assets.Requests(ps), 0)
//	rec := render.Plan(ps, set, fonts)
//	_ = rec.Playback(backend)
package render
