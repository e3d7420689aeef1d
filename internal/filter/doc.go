// Package filter implements the color transforms applied to scene colors
// and decoded image pixels.
//
// Two modes exist: identity, and a dark mode that reproduces the CSS filter
// chain "invert(93%) hue-rotate(180deg)" with exact integer results. The
// symbolic variant (DarkMode, on hex strings) and the pixel variant
// (ApplyNRGBA, on byte buffers) share one implementation so that vector
// output, which filters colors, and raster output, which filters pixels,
// agree channel for channel.
package filter
