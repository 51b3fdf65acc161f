package joule

// Reduce exposes reduce to the external tests.
var Reduce = reduce
