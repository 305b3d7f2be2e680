// Command textarrays prints the index structures of a text, one row per
// structure:
//
//	textarrays -text banana -structures SA-ISA-LCP -options dollar-space
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/viniciusth/textarrays"
)

func main() {
	text := flag.String("text", "", "Text to index, the placeholder is used when empty")
	placeholder := flag.String("placeholder", textarrays.DefaultPlaceholder, "Text indexed when -text is empty")
	structures := flag.String("structures", "", "Dash separated structures, e.g. SA-ISA-LCP (default Index-SA-ISA-LCP-BWT)")
	options := flag.String("options", "space", "Dash separated options: baseone, dollar, comma, space, whitespace, hex, kasai")
	hole := flag.String("hole", "-", "Marker written for undefined PSI and PHI slots")
	list := flag.Bool("list", false, "List the known structures and exit")
	flag.Parse()

	if *list {
		names := make([]string, 0)
		for _, s := range textarrays.AllStructures() {
			names = append(names, s.String())
		}
		fmt.Println(strings.Join(names, "-"))
		return
	}

	cfg, f := textarrays.ParseOptions(*options)
	cfg.Placeholder = *placeholder
	f.HoleMarker = *hole

	if f.VisibleWhitespace {
		*text = decodeWhitespace(*text)
	}

	set, err := textarrays.BuildIndexes(*text, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build indexes: %v\n", err)
		os.Exit(1)
	}

	selected := textarrays.DefaultStructures
	if *structures != "" {
		selected = textarrays.ParseStructures(*structures)
		if len(selected) == 0 {
			fmt.Fprintf(os.Stderr, "no known structure in %q\n", *structures)
			os.Exit(1)
		}
	}
	fmt.Println(f.FormatRows(set, selected))
}

// decodeWhitespace turns the visible whitespace glyphs back into whitespace so
// rows printed with the whitespace option can be pasted back as input.
func decodeWhitespace(s string) string {
	return strings.NewReplacer("↵", "\n", "⎵", " ").Replace(s)
}
