// Package compose renders an icon descriptor into a master raster.
//
// Each visual element is drawn on its own transparent layer, confined by a
// mask where needed, and merged into the master canvas with "over"
// compositing in the fixed [Order]. A [Result] is only ever produced after
// the last layer has been merged.
package compose
