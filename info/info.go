package info

// Version is overridden at link time for release builds.
var Version = "0.1.0"
