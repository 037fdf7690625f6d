package hough

// WithDefaults exposes option resolution to the external tests.
var WithDefaults = Options.withDefaults
