package cli

import (
	"strings"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

// formatMix renders a mix as an ordered arrow-separated chain
func formatMix(mix mixing.Mix) string {
	if len(mix) == 0 {
		return "(none)"
	}
	return strings.Join(mix, " -> ")
}
