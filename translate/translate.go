// Package translate renders user-facing messages through a locale-aware
// printer. Message keys are en-US Printf formats.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hp15c: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message language from a list of preferred locales.
// An empty list selects en-US.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	mutex.Lock()
	defer mutex.Unlock()
	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()
	return printer.Sprintf(key, args...)
}
