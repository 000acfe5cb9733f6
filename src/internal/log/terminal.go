package log

// ClearTerm clears the terminal and moves the cursor home.
func (l *Logger) ClearTerm() {
	l.Rawf("\033[H\033[J")
}

// CursorUp moves the cursor up n lines.
func (l *Logger) CursorUp(n int) {
	l.Rawf("\033[%dA", n)
}

// EraseLine clears the current line and returns the cursor to column 0.
func (l *Logger) EraseLine() {
	l.Rawf("\r\033[2K")
}
