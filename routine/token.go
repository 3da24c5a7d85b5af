package routine

import "strings"

// reconstruct walks the original string around the sorted spans, producing
// the residual action text and the ordered token stream. Gaps between spans
// keep their original casing; each claimed span contributes its canonical
// rendering instead of its source text.
func reconstruct(raw string, spans []span) (string, []Token) {
	var parts []string
	var tokens []Token

	emitGap := func(gap string) {
		text := strings.Join(strings.Fields(gap), " ")
		if text == "" {
			return
		}
		// A stranded connector "at" (left behind when a bare time form
		// matched) is display-only and never part of the action.
		if strings.EqualFold(text, "at") {
			tokens = append(tokens, Token{Text: text, Kind: TokenPlain})
			return
		}
		parts = append(parts, text)
		tokens = append(tokens, Token{Text: text, Kind: TokenAction})
	}

	prev := 0
	for _, s := range spans {
		emitGap(raw[prev:s.start])
		tokens = append(tokens, Token{Text: s.text, Kind: s.kind})
		prev = s.end
	}
	emitGap(raw[prev:])

	action := strings.TrimSpace(strings.Join(parts, " "))
	if lowered := lowerASCII(action); lowered == "at" {
		action = ""
	} else if strings.HasPrefix(lowered, "at ") {
		action = strings.TrimSpace(action[3:])
	} else if strings.HasSuffix(lowered, " at") {
		action = strings.TrimSpace(action[:len(action)-3])
	}
	return action, tokens
}
