package blockify

import (
	"log"
	"os"
)

// Logger is the package-level logger. It only ever sees warnings: the parser
// itself never fails, it degrades.
var Logger = log.New(os.Stderr, "[blockify] ", log.LstdFlags)

// SetLogger replaces the package-level logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
