// Package sketch maps element style fields onto deterministic drawing
// options: stroke width and dash pattern, fill pattern lines, and the
// seeded hand-drawn jitter. Everything here is computed from the element
// alone, so every backend receives identical geometry.
package sketch
