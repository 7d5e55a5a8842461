// Package launcher runs the external sync tool. It resolves the directory of
// the running executable, builds the fixed command line
// `<interpreter> <dir>/labsync.py -v sync`, executes it with an inherited
// console, and provides the post-run pause that keeps the terminal window
// open until the user acknowledges.
package launcher
