package main

// _version is the version of hlduel.
// This is set at build time with the -X linker flag.
var _version = "dev"
