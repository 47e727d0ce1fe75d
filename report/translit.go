package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translitTable — таблица транслитерации кириллицы в латиницу.
// Используется, когда Unicode-шрифт для PDF недоступен и текст приходится
// приводить к символам встроенного шрифта.
var translitTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// foldDiacritics убирает комбинируемые диакритические знаки (é -> e и т.п.).
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate приводит строку к ASCII: кириллица транслитерируется,
// диакритика сворачивается, остальные непредставимые символы (эмодзи и пр.)
// отбрасываются. Отчёт из-за отсутствующего глифа никогда не падает.
func Transliterate(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r < 128:
			b.WriteRune(r)
		default:
			lower := unicode.ToLower(r)
			mapped, ok := translitTable[lower]
			if !ok {
				continue
			}
			if lower != r && mapped != "" {
				// Сохраняем заглавную букву исходника.
				b.WriteString(strings.ToUpper(mapped[:1]) + mapped[1:])
			} else {
				b.WriteString(mapped)
			}
		}
	}
	return b.String()
}
