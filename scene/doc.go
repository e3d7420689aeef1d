// Package scene decodes diagram documents and prepares them for rendering.
//
// A document is decoded into a Scene whose elements form a closed set of
// variant types (Rectangle, Diamond, Ellipse, Line, Arrow, Freedraw, Text,
// Image, Frame, Embeddable). Prepare turns a Scene into an immutable
// PreparedScene: deleted elements dropped, an optional frame selected,
// rotation-aware bounds and output size computed, the background resolved
// and the elements sorted into paint order.
package scene
