package rtf

import "github.com/dgallion1/docrtf/internal/doctree"

// symbolPlaceholder replaces characters that have no RTF rendering.
const symbolPlaceholder = "?"

var fixedSymbols = map[doctree.SymbolKind]string{
	doctree.SymBSlash:  `\\`,
	doctree.SymAt:      "@",
	doctree.SymLess:    "<",
	doctree.SymGreater: ">",
	doctree.SymAmp:     "&",
	doctree.SymDollar:  "$",
	doctree.SymHash:    "#",
	doctree.SymPercent: "%",
	doctree.SymApos:    "'",
	doctree.SymQuot:    `"`,
	doctree.SymNbsp:    `\~`,
}

var accented = map[doctree.SymbolKind]map[byte]rune{
	doctree.SymUml: {
		'A': 'Ä', 'E': 'Ë', 'I': 'Ï', 'O': 'Ö', 'U': 'Ü', 'Y': 'Ÿ',
		'a': 'ä', 'e': 'ë', 'i': 'ï', 'o': 'ö', 'u': 'ü', 'y': 'ÿ',
	},
	doctree.SymAcute: {
		'A': 'Á', 'E': 'É', 'I': 'Í', 'O': 'Ó', 'U': 'Ú', 'Y': 'Ý',
		'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'u': 'ú', 'y': 'ý',
	},
	doctree.SymGrave: {
		'A': 'À', 'E': 'È', 'I': 'Ì', 'O': 'Ò', 'U': 'Ù',
		'a': 'à', 'e': 'è', 'i': 'ì', 'o': 'ò', 'u': 'ù',
	},
	doctree.SymCirc: {
		'A': 'Â', 'E': 'Ê', 'I': 'Î', 'O': 'Ô', 'U': 'Û',
		'a': 'â', 'e': 'ê', 'i': 'î', 'o': 'ô', 'u': 'û',
	},
	doctree.SymTilde: {
		'A': 'Ã', 'N': 'Ñ', 'O': 'Õ',
		'a': 'ã', 'n': 'ñ', 'o': 'õ',
	},
	doctree.SymCedil: {'C': 'Ç', 'c': 'ç'},
	doctree.SymRing:  {'A': 'Å', 'a': 'å'},
}

var fixedLetters = map[doctree.SymbolKind]rune{
	doctree.SymCopy:  '©',
	doctree.SymSzlig: 'ß',
}

// symbolText renders s. Letters are returned as UTF-8 text for the code
// page encoder; letter reports which form text has. known is false for
// symbol kinds outside the tables.
func symbolText(s *doctree.Symbol) (text string, letter, known bool) {
	if table, ok := accented[s.Symbol]; ok {
		r, ok := table[s.Letter]
		if !ok {
			return symbolPlaceholder, false, true
		}
		return string(r), true, true
	}
	if r, ok := fixedLetters[s.Symbol]; ok {
		return string(r), true, true
	}
	if text, ok := fixedSymbols[s.Symbol]; ok {
		return text, false, true
	}
	return symbolPlaceholder, false, false
}
