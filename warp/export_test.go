package warp

// CellEdge exposes grid ruling placement to the external tests.
var CellEdge = cellEdge
