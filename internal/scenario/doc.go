// Package scenario parses scenario scripts: line-oriented text files
// describing a fake terminal session.
//
// A script consists of an optional header directive on the first line
// followed by body lines, each of which plays exactly one role:
//
//	#! {"step": 0.05, "width": 80}   header (first line only)
//	#timeout: 1.5                    pause the virtual clock
//	# anything                       comment, skipped
//	$ ls                             typed command
//	(nix-shell) $ make               typed command with prompt label
//	--                               clear the screen
//	                                 blank, short pause
//	hello world                      plain output, printed at once
//
// [Classify] assigns each body line its role; [ParseHeader] decodes the
// header directive. Both are pure and perform no I/O.
package scenario
