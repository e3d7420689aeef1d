// Package recording provides the command recording that sits between the
// composition planner and the output backends.
//
// The planner walks a prepared scene once and records every drawing
// operation with its final element-to-output matrix already computed.
// A Recording is then replayed to one backend per output format:
//
//   - Recorder: captures commands and interns their resources
//   - Recording: immutable commands plus a ResourcePool
//   - Backend: turns commands into bytes (raster pixels, PDF, SVG)
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	rec.FillRect(geom.NewRect(0, 0, 800, 600), recording.NewSolidBrush(white))
//	rec.BeginGroup(recording.Group{Clip: &recording.Clip{Path: frame, Matrix: m}})
//	rec.FillPath(path, m, brush, recording.FillRuleNonZero)
//	rec.EndGroup()
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Backends register themselves by name, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/scenerender/recording/backends/svg"
//
//	backend, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	_, err = backend.(recording.WriterBackend).WriteTo(w)
//
// # Groups
//
// Clip and mask groups nest. A Clip limits drawing to the inside of a
// path; a Mask hides output-space holes, such as the boxes of arrow
// labels, from everything drawn inside the group.
//
// # Thread Safety
//
// A Recorder is not safe for concurrent use. A finished Recording is
// read-only and can be replayed to several backends from different
// goroutines; each backend instance must be used by one goroutine.
package recording
