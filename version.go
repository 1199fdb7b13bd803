package quire

// Version is the current release of quire.
const Version = "0.3.0"
