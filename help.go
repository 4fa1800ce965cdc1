package main

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the current board\n")
	io.WriteString(w, "reset - restore the standard starting position\n")
	io.WriteString(w, "solve - search for a winning jump sequence\n")
	io.WriteString(w, "n - play the next move of the found solution\n")
	io.WriteString(w, "b - take back the last played solution move\n")
	io.WriteString(w, "setup <7 rows of 7 chars> - load a position; # outside, . marble, o hole\n")
	io.WriteString(w, "remove <x> <y> - take a marble off the board\n")
	io.WriteString(w, "threads <n> - set the number of search workers (1 = deterministic)\n")
	io.WriteString(w, "help - this message\n")
	io.WriteString(w, "exit (or bye) - quit\n")
}
