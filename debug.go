package termrb

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// debug categories, named after the flag letters libtickit's own
// TICKIT_DEBUG env var uses: t(ranslate/clip/mask), s(tack), d(raw), f(lush).
const (
	catTranslate = "Bt"
	catStack     = "Bs"
	catDraw      = "Bd"
	catFlush     = "Bf"
)

var debugEnabled = map[string]bool{}

func init() {
	flags := os.Getenv("TERMRB_DEBUG")
	for _, f := range strings.Split(flags, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			debugEnabled[f] = true
		}
	}
}

var debugLog = log.New(os.Stderr, "", log.Lmicroseconds)

// debugLogf writes an indented trace line for category cat if it was
// requested via the TERMRB_DEBUG environment variable (a comma-separated
// list of category codes, e.g. "Bs,Bf"). Indentation tracks save/restore
// depth so nested frames are visually distinguishable.
func debugLogf(rb *RenderBuffer, cat, format string, args ...interface{}) {
	if !debugEnabled[cat] {
		return
	}
	indent := strings.Repeat("|  ", rb.depth)
	debugLog.Printf("%s%s %s", indent, cat, fmt.Sprintf(format, args...))
}
