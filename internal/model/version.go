package model

// Version is the release of the mazepath binary.
const Version = "0.3.0"
