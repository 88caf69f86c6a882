// Package export writes packed layouts to files other tools can read: SVG
// and PDF drawings, DXF outlines for CAD, and CSV or XLSX point tables.
//
// Every writer takes container coordinates (origin bottom-left, y up) and
// flips them where the target format has y pointing down.
package export
