// Package viewstate holds the immutable view records shared by the
// terminal UI and their pure transition functions. A reducer never
// performs I/O: it returns the next state plus an effect for the caller
// to run.
package viewstate
